package catalog

import (
	"strings"

	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
)

// Clases de estado del filtro de listado.
const (
	ClassAll        = "todos"
	ClassActive     = "activos"
	ClassOutOfStock = "sin_stock"
)

// Filter son los tres filtros conjuntivos del listado de productos:
// texto libre sobre nombre o descripción (substring case-insensitive),
// igualdad de empresa (solo tiene sentido para admin) y clase de estado.
// El valor cero no filtra nada.
type Filter struct {
	Query     string
	CompanyID string
	Class     string // todos | activos | sin_stock
}

// Matches aplica los tres filtros en AND sobre un producto.
func (f Filter) Matches(p *entity.Product) bool {
	if f.CompanyID != "" && p.CompanyID != f.CompanyID {
		return false
	}
	switch f.Class {
	case ClassActive:
		if p.Status != entity.StatusActive {
			return false
		}
	case ClassOutOfStock:
		if p.Stock != 0 {
			return false
		}
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

// Apply devuelve los productos que pasan el filtro, preservando el orden de entrada.
func (f Filter) Apply(products []*entity.Product) []*entity.Product {
	if f.Query == "" && f.CompanyID == "" && (f.Class == "" || f.Class == ClassAll) {
		return products
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
