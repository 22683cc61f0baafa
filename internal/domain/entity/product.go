package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto tal como los muestra el dashboard.
// "Sin Stock" nunca es destino del toggle Activo/Pausado; solo llega por edición directa.
const (
	StatusActive     = "Activo"
	StatusOutOfStock = "Sin Stock"
	StatusPaused     = "Pausado"
)

// Product representa un producto del catálogo de una empresa.
// Un producto pertenece exactamente a una empresa y solo es direccionable
// por el par (CompanyID, ID); los IDs no son únicos entre empresas.
type Product struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Price       decimal.Decimal // no negativo
	Stock       int             // entero no negativo
	Image       string          // referencia opcional (key en S3)
	Status      string          // ver constantes Status*
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidStatus informa si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusOutOfStock || s == StatusPaused
}
