package catalog

import (
	"github.com/tu-usuario/ecommercebot-api/internal/domain"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
)

// Scope es el contexto de sesión explícito que delimita qué empresas puede
// ver y mutar un perfil. Se construye a partir de los claims del token en
// cada petición y se pasa a los casos de uso; no hay estado global de sesión.
type Scope struct {
	UserID    string
	Role      string // admin | cliente
	CompanyID string // vacío para admin
}

// IsAdmin informa si el alcance cubre todas las empresas.
func (s Scope) IsAdmin() bool {
	return s.Role == entity.RoleAdmin
}

// CanAccess informa si el alcance permite leer/mutar datos de companyID.
func (s Scope) CanAccess(companyID string) bool {
	if s.IsAdmin() {
		return true
	}
	return companyID != "" && companyID == s.CompanyID
}

// ResolveCompany determina la empresa destino de una escritura.
// Un admin debe elegirla explícitamente (requested); un cliente usa siempre
// la suya, y pedir otra es un acceso denegado, no un fallback silencioso.
func (s Scope) ResolveCompany(requested string) (string, error) {
	if s.IsAdmin() {
		if requested == "" {
			return "", domain.ErrCompanyRequired
		}
		return requested, nil
	}
	if s.CompanyID == "" {
		return "", domain.ErrCompanyRequired
	}
	if requested != "" && requested != s.CompanyID {
		return "", domain.ErrForbidden
	}
	return s.CompanyID, nil
}
