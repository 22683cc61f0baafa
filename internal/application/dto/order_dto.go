package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para registrar un pedido tomado por un bot.
// El monto se deriva de precio × cantidad del producto referenciado.
type CreateOrderRequest struct {
	CompanyID string `json:"company_id"`
	Customer  string `json:"customer" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
	Channel   string `json:"channel" validate:"required,oneof=WhatsApp Instagram"`
}

// UpdateOrderStatusRequest cambio de estado de un pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Number      string          `json:"number"`
	Customer    string          `json:"customer"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Channel     string          `json:"channel"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderListResponse pedidos visibles tras alcance y filtros.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// OrderStatusSummary conteo y total por estado.
type OrderStatusSummary struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// OrderSummaryResponse resumen por estado en el orden del dashboard.
type OrderSummaryResponse struct {
	ByStatus []OrderStatusSummary `json:"by_status"`
}
