package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
)

// Summary son los agregados derivados que muestran las tarjetas del dashboard.
// Se recalculan sobre el último fetch exitoso; no se persisten.
type Summary struct {
	Total          int
	Active         int
	OutOfStock     int
	InventoryValue decimal.Decimal // Σ(precio × stock)
}

// Summarize calcula los agregados sobre el conjunto dado.
// El llamador decide el conjunto (completo o filtrado); la regla del API es
// calcularlo siempre sobre el conjunto completo del alcance.
func Summarize(products []*entity.Product) Summary {
	s := Summary{InventoryValue: decimal.Zero}
	for _, p := range products {
		s.Total++
		if p.Status == entity.StatusActive {
			s.Active++
		}
		if p.Stock == 0 {
			s.OutOfStock++
		}
		s.InventoryValue = s.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return s
}
