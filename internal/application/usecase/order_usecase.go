package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/domain"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/catalog"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/repository"
)

// OrderUseCase pedidos tomados por los bots, con el mismo alcance por rol que
// el catálogo: admin ve todas las empresas, cliente solo la suya.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, productRepo: productRepo}
}

// scopeCompany devuelve el filtro de empresa para consultas: vacío = todas.
func scopeCompany(scope catalog.Scope, requested string) (string, error) {
	if scope.IsAdmin() {
		return requested, nil // vacío = todas las empresas
	}
	if scope.CompanyID == "" {
		return "", domain.ErrCompanyRequired
	}
	if requested != "" && requested != scope.CompanyID {
		return "", domain.ErrForbidden
	}
	return scope.CompanyID, nil
}

// List devuelve los pedidos visibles, filtrados por texto (cliente, producto
// o número, substring case-insensitive) y por estado. Filtros en AND.
func (uc *OrderUseCase) List(scope catalog.Scope, companyID, query, status string) (*dto.OrderListResponse, error) {
	target, err := scopeCompany(scope, companyID)
	if err != nil {
		return nil, err
	}
	if status != "" && status != "Todos" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.List(target)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		if status != "" && status != "Todos" && o.Status != status {
			continue
		}
		if query != "" && !orderMatches(o, query) {
			continue
		}
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

func orderMatches(o *entity.Order, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(o.Customer), q) ||
		strings.Contains(strings.ToLower(o.ProductName), q) ||
		strings.Contains(strings.ToLower(o.Number), q)
}

// Create registra un pedido: resuelve la empresa destino, busca el producto
// por clave compuesta y deriva el monto como precio × cantidad.
func (uc *OrderUseCase) Create(scope catalog.Scope, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	companyID, err := scope.ResolveCompany(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if in.Customer == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Channel != entity.ChannelWhatsApp && in.Channel != entity.ChannelInstagram {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByCompanyAndID(companyID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Customer:    in.Customer,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		Amount:      product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:      entity.OrderPending,
		Channel:     in.Channel,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus cambia el estado de un pedido del alcance. Devuelve nil si el
// pedido no existe dentro del alcance.
func (uc *OrderUseCase) UpdateStatus(scope catalog.Scope, companyID, orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	target, err := scopeCompany(scope, companyID)
	if err != nil {
		return nil, err
	}
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByCompanyAndID(target, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !scope.CanAccess(order.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if err := uc.orderRepo.UpdateStatus(order.CompanyID, order.ID, in.Status); err != nil {
		return nil, err
	}
	order.Status = in.Status
	return toOrderResponse(order), nil
}

// Summary devuelve conteo y total por estado, en el orden del dashboard y con
// ceros para los estados sin pedidos.
func (uc *OrderUseCase) Summary(scope catalog.Scope, companyID string) (*dto.OrderSummaryResponse, error) {
	target, err := scopeCompany(scope, companyID)
	if err != nil {
		return nil, err
	}
	counts, err := uc.orderRepo.CountByStatus(target)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]repository.OrderStatusCount, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c
	}
	out := make([]dto.OrderStatusSummary, 0, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		row := dto.OrderStatusSummary{Status: st, Total: decimal.Zero}
		if c, ok := byStatus[st]; ok {
			row.Count = c.Count
			row.Total = c.Total
		}
		out = append(out, row)
	}
	return &dto.OrderSummaryResponse{ByStatus: out}, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		CompanyID:   o.CompanyID,
		Number:      o.Number,
		Customer:    o.Customer,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		Amount:      o.Amount,
		Status:      o.Status,
		Channel:     o.Channel,
		CreatedAt:   o.CreatedAt,
	}
}
