package repository

import "github.com/tu-usuario/ecommercebot-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
// List devuelve todas las empresas; el registro es de escala humana y no pagina.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	List() ([]*entity.Company, error)
	Delete(id string) error
}
