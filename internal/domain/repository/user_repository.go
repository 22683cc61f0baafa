package repository

import "github.com/tu-usuario/ecommercebot-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el documento no existe;
// distinguir "no encontrado" de fallo de lectura es responsabilidad del caller.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
