package repository

import "github.com/tu-usuario/ecommercebot-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// Todas las operaciones sobre un producto existente exigen la clave compuesta
// (companyID, id): un id de producto solo es único dentro de su empresa.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByCompanyAndID(companyID, id string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string) ([]*entity.Product, error)
	Delete(companyID, id string) error
}
