package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthlySales ventas e ingresos de un mes calendario.
type MonthlySales struct {
	Month  string // "2024-06"
	Sales  decimal.Decimal
	Orders int
}

// TopProduct producto con más unidades vendidas en el período.
type TopProduct struct {
	ProductName string
	Units       int
	Revenue     decimal.Decimal
}

// ChannelConversions pedidos concretados por canal.
type ChannelConversions struct {
	Channel     string
	Conversions int
	Revenue     decimal.Decimal
}

// CompanyOverview totales de plataforma de una empresa (vista admin).
type CompanyOverview struct {
	CompanyID   string
	CompanyName string
	Email       string
	Products    int
	Orders      int
	Revenue     decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para la analítica del dashboard.
// Los pedidos cancelados se excluyen de ventas e ingresos.
// companyID vacío = todas las empresas (alcance admin).
type AnalyticsRepository interface {
	SalesByMonth(ctx context.Context, companyID string, months int) ([]MonthlySales, error)
	TopProducts(ctx context.Context, companyID string, limit int) ([]TopProduct, error)
	ConversionsByChannel(ctx context.Context, companyID string) ([]ChannelConversions, error)
	PlatformOverview(ctx context.Context) ([]CompanyOverview, error)
}
