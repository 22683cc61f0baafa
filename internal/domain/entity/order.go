package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido.
const (
	OrderPending    = "Pendiente"
	OrderProcessing = "Procesando"
	OrderShipped    = "Enviado"
	OrderDelivered  = "Entregado"
	OrderCancelled  = "Cancelado"
)

// OrderStatuses estados en el orden en que los muestra el dashboard.
var OrderStatuses = []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

// Canales de venta atendidos por los bots.
const (
	ChannelWhatsApp  = "WhatsApp"
	ChannelInstagram = "Instagram"
)

// Order representa un pedido tomado por un bot para una empresa.
// ProductName va denormalizado para que el pedido sobreviva al borrado del producto.
type Order struct {
	ID          string
	CompanyID   string
	Number      string // identificador corto visible, ej. "#1234"
	Customer    string
	ProductID   string
	ProductName string
	Quantity    int
	Amount      decimal.Decimal
	Status      string // ver constantes Order*
	Channel     string // WhatsApp, Instagram
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidOrderStatus informa si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}
