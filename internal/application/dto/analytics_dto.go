package dto

import "github.com/shopspring/decimal"

// MonthlySalesResponse ventas de un mes.
type MonthlySalesResponse struct {
	Month  string          `json:"month"`
	Sales  decimal.Decimal `json:"sales"`
	Orders int             `json:"orders"`
}

// SalesReportResponse serie mensual más totales del período.
type SalesReportResponse struct {
	Months      []MonthlySalesResponse `json:"months"`
	TotalSales  decimal.Decimal        `json:"total_sales"`
	TotalOrders int                    `json:"total_orders"`
}

// TopProductResponse producto con más unidades vendidas.
type TopProductResponse struct {
	Name    string          `json:"name"`
	Units   int             `json:"units"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ChannelStatsResponse desempeño por canal de venta.
type ChannelStatsResponse struct {
	Channel     string          `json:"channel"`
	Conversions int             `json:"conversions"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// CompanyOverviewResponse fila de la vista de plataforma (solo admin).
type CompanyOverviewResponse struct {
	CompanyID   string          `json:"company_id"`
	CompanyName string          `json:"company_name"`
	Email       string          `json:"email"`
	Products    int             `json:"products"`
	Orders      int             `json:"orders"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// PlatformOverviewResponse totales de plataforma para el panel admin.
type PlatformOverviewResponse struct {
	Companies    []CompanyOverviewResponse `json:"companies"`
	TotalRevenue decimal.Decimal           `json:"total_revenue"`
	TotalOrders  int                       `json:"total_orders"`
}
