package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
)

// OrderStatusCount conteo y total facturado de un estado de pedido.
type OrderStatusCount struct {
	Status string
	Count  int
	Total  decimal.Decimal
}

// OrderRepository define el puerto de persistencia para Order.
// companyID vacío = todas las empresas (alcance admin).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByCompanyAndID(companyID, id string) (*entity.Order, error)
	List(companyID string) ([]*entity.Order, error)
	UpdateStatus(companyID, id, status string) error
	CountByStatus(companyID string) ([]OrderStatusCount, error)
}
