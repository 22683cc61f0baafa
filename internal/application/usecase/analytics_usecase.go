package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/domain"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/catalog"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/repository"
)

// AnalyticsUseCase reportes de ventas calculados sobre pedidos persistidos.
// Los pedidos cancelados quedan fuera de todos los totales.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// Sales serie mensual de ventas y pedidos del alcance, con totales del período.
func (uc *AnalyticsUseCase) Sales(ctx context.Context, scope catalog.Scope, months int) (*dto.SalesReportResponse, error) {
	target, err := scopeCompany(scope, "")
	if err != nil {
		return nil, err
	}
	if months <= 0 || months > 24 {
		months = 6
	}
	rows, err := uc.repo.SalesByMonth(ctx, target, months)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesReportResponse{
		Months:     make([]dto.MonthlySalesResponse, 0, len(rows)),
		TotalSales: decimal.Zero,
	}
	for _, r := range rows {
		out.Months = append(out.Months, dto.MonthlySalesResponse{Month: r.Month, Sales: r.Sales, Orders: r.Orders})
		out.TotalSales = out.TotalSales.Add(r.Sales)
		out.TotalOrders += r.Orders
	}
	return out, nil
}

// TopProducts productos con más unidades vendidas en el alcance.
func (uc *AnalyticsUseCase) TopProducts(ctx context.Context, scope catalog.Scope, limit int) ([]dto.TopProductResponse, error) {
	target, err := scopeCompany(scope, "")
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	rows, err := uc.repo.TopProducts(ctx, target, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductResponse{Name: r.ProductName, Units: r.Units, Revenue: r.Revenue})
	}
	return out, nil
}

// Channels conversiones e ingresos por canal de venta.
func (uc *AnalyticsUseCase) Channels(ctx context.Context, scope catalog.Scope) ([]dto.ChannelStatsResponse, error) {
	target, err := scopeCompany(scope, "")
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.ConversionsByChannel(ctx, target)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChannelStatsResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ChannelStatsResponse{Channel: r.Channel, Conversions: r.Conversions, Revenue: r.Revenue})
	}
	return out, nil
}

// Overview vista de plataforma del panel admin: totales por empresa.
func (uc *AnalyticsUseCase) Overview(ctx context.Context, scope catalog.Scope) (*dto.PlatformOverviewResponse, error) {
	if !scope.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	rows, err := uc.repo.PlatformOverview(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.PlatformOverviewResponse{
		Companies:    make([]dto.CompanyOverviewResponse, 0, len(rows)),
		TotalRevenue: decimal.Zero,
	}
	for _, r := range rows {
		out.Companies = append(out.Companies, dto.CompanyOverviewResponse{
			CompanyID:   r.CompanyID,
			CompanyName: r.CompanyName,
			Email:       r.Email,
			Products:    r.Products,
			Orders:      r.Orders,
			Revenue:     r.Revenue,
		})
		out.TotalRevenue = out.TotalRevenue.Add(r.Revenue)
		out.TotalOrders += r.Orders
	}
	return out, nil
}
