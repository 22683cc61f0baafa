package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// El número corto visible ("#1234") lo asigna la base con una identity column.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste un pedido y deja el número asignado en order.Number.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, company_id, customer, product_id, product_name, quantity, amount, status, channel, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9, $10, $11)
		RETURNING order_number`
	var number int64
	err := r.pool.QueryRow(context.Background(), query,
		order.ID, order.CompanyID, order.Customer, order.ProductID, order.ProductName,
		order.Quantity, order.Amount, order.Status, order.Channel,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&number)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.Number = fmt.Sprintf("#%d", number)
	return nil
}

// GetByCompanyAndID obtiene un pedido; companyID vacío busca en todas las
// empresas (alcance admin). (nil, nil) si no existe.
func (r *OrderRepo) GetByCompanyAndID(companyID, id string) (*entity.Order, error) {
	query := `
		SELECT id, company_id, '#' || order_number, customer, COALESCE(product_id::text, ''), product_name,
		       quantity, amount, status, channel, created_at, updated_at
		FROM orders WHERE id = $2 AND ($1 = '' OR company_id::text = $1)`
	var o entity.Order
	err := r.pool.QueryRow(context.Background(), query, companyID, id).Scan(
		&o.ID, &o.CompanyID, &o.Number, &o.Customer, &o.ProductID, &o.ProductName,
		&o.Quantity, &o.Amount, &o.Status, &o.Channel, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List devuelve pedidos del alcance, más recientes primero. companyID vacío = todas.
func (r *OrderRepo) List(companyID string) ([]*entity.Order, error) {
	query := `
		SELECT id, company_id, '#' || order_number, customer, COALESCE(product_id::text, ''), product_name,
		       quantity, amount, status, channel, created_at, updated_at
		FROM orders WHERE ($1 = '' OR company_id::text = $1)
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.Number, &o.Customer, &o.ProductID, &o.ProductName,
			&o.Quantity, &o.Amount, &o.Status, &o.Channel, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de un pedido por clave compuesta.
func (r *OrderRepo) UpdateStatus(companyID, id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE orders SET status = $3, updated_at = now() WHERE company_id = $1 AND id = $2`,
		companyID, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// CountByStatus agrupa conteo y total por estado. companyID vacío = todas.
func (r *OrderRepo) CountByStatus(companyID string) ([]repository.OrderStatusCount, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM orders WHERE ($1 = '' OR company_id::text = $1)
		GROUP BY status`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()
	var out []repository.OrderStatusCount
	for rows.Next() {
		var c repository.OrderStatusCount
		if err := rows.Scan(&c.Status, &c.Count, &c.Total); err != nil {
			return nil, fmt.Errorf("scan order count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
