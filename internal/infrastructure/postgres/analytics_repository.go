package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación para la analítica del dashboard.
// Todas las métricas de ventas excluyen pedidos cancelados.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de consultas analíticas.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// SalesByMonth ventas e ingresos por mes calendario de los últimos N meses.
// companyID vacío agrega sobre todas las empresas.
func (r *AnalyticsRepo) SalesByMonth(ctx context.Context, companyID string, months int) ([]repository.MonthlySales, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS mes, COALESCE(SUM(amount), 0), COUNT(*)
		FROM orders
		WHERE status <> 'Cancelado'
		  AND created_at >= date_trunc('month', now()) - ($2 - 1) * INTERVAL '1 month'
		  AND ($1 = '' OR company_id::text = $1)
		GROUP BY mes
		ORDER BY mes`
	rows, err := r.pool.Query(ctx, query, companyID, months)
	if err != nil {
		return nil, fmt.Errorf("sales by month: %w", err)
	}
	defer rows.Close()
	var out []repository.MonthlySales
	for rows.Next() {
		var m repository.MonthlySales
		if err := rows.Scan(&m.Month, &m.Sales, &m.Orders); err != nil {
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// TopProducts productos con más unidades vendidas, de mayor a menor.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, companyID string, limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT product_name, COALESCE(SUM(quantity), 0), COALESCE(SUM(amount), 0)
		FROM orders
		WHERE status <> 'Cancelado' AND ($1 = '' OR company_id::text = $1)
		GROUP BY product_name
		ORDER BY SUM(quantity) DESC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var out []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductName, &t.Units, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ConversionsByChannel pedidos concretados e ingresos por canal de venta.
func (r *AnalyticsRepo) ConversionsByChannel(ctx context.Context, companyID string) ([]repository.ChannelConversions, error) {
	query := `
		SELECT channel, COUNT(*), COALESCE(SUM(amount), 0)
		FROM orders
		WHERE status <> 'Cancelado' AND ($1 = '' OR company_id::text = $1)
		GROUP BY channel
		ORDER BY channel`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("conversions by channel: %w", err)
	}
	defer rows.Close()
	var out []repository.ChannelConversions
	for rows.Next() {
		var c repository.ChannelConversions
		if err := rows.Scan(&c.Channel, &c.Conversions, &c.Revenue); err != nil {
			return nil, fmt.Errorf("scan channel conversions: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// PlatformOverview totales por empresa para la vista global del admin.
func (r *AnalyticsRepo) PlatformOverview(ctx context.Context) ([]repository.CompanyOverview, error) {
	query := `
		SELECT c.id, c.name, c.email,
		       (SELECT COUNT(*) FROM products p WHERE p.company_id = c.id),
		       (SELECT COUNT(*) FROM orders o WHERE o.company_id = c.id AND o.status <> 'Cancelado'),
		       (SELECT COALESCE(SUM(o.amount), 0) FROM orders o WHERE o.company_id = c.id AND o.status <> 'Cancelado')
		FROM companies c
		ORDER BY c.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("platform overview: %w", err)
	}
	defer rows.Close()
	var out []repository.CompanyOverview
	for rows.Next() {
		var o repository.CompanyOverview
		if err := rows.Scan(&o.CompanyID, &o.CompanyName, &o.Email, &o.Products, &o.Orders, &o.Revenue); err != nil {
			return nil, fmt.Errorf("scan company overview: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
