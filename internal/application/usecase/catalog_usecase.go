package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/domain"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/catalog"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/repository"
)

// CatalogUseCase acceso al catálogo de productos con resolución de alcance:
// un admin ve la unión de los catálogos de todas las empresas; un cliente ve
// exactamente el de la suya.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository, companyRepo repository.CompanyRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, companyRepo: companyRepo}
}

// resolveProducts ejecuta el algoritmo de resolución de alcance: para admin
// concatena los productos de cada empresa en orden de listado; para cliente
// consulta solo su empresa. Cada producto sale estampado con el company_id de
// la consulta que lo trajo, no con un campo almacenado.
func (uc *CatalogUseCase) resolveProducts(scope catalog.Scope) ([]*entity.Product, error) {
	if scope.IsAdmin() {
		companies, err := uc.companyRepo.List()
		if err != nil {
			return nil, err
		}
		var all []*entity.Product
		for _, c := range companies {
			items, err := uc.productRepo.ListByCompany(c.ID)
			if err != nil {
				return nil, err
			}
			for _, p := range items {
				p.CompanyID = c.ID
			}
			all = append(all, items...)
		}
		return all, nil
	}
	if scope.CompanyID == "" {
		return nil, domain.ErrCompanyRequired
	}
	items, err := uc.productRepo.ListByCompany(scope.CompanyID)
	if err != nil {
		return nil, err
	}
	for _, p := range items {
		p.CompanyID = scope.CompanyID
	}
	return items, nil
}

// List devuelve los productos visibles para el alcance tras aplicar los
// filtros conjuntivos. El filtro por empresa es exclusivo de admin: un
// cliente que pida otra empresa recibe acceso denegado.
func (uc *CatalogUseCase) List(scope catalog.Scope, filter catalog.Filter) (*dto.ProductListResponse, error) {
	if !scope.IsAdmin() && filter.CompanyID != "" && filter.CompanyID != scope.CompanyID {
		return nil, domain.ErrForbidden
	}
	products, err := uc.resolveProducts(scope)
	if err != nil {
		return nil, err
	}
	visible := filter.Apply(products)
	items := make([]dto.ProductResponse, 0, len(visible))
	for _, p := range visible {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Summary calcula los agregados sobre el conjunto completo del alcance,
// sin filtros; ver DESIGN.md.
func (uc *CatalogUseCase) Summary(scope catalog.Scope) (*dto.CatalogSummaryResponse, error) {
	products, err := uc.resolveProducts(scope)
	if err != nil {
		return nil, err
	}
	s := catalog.Summarize(products)
	return &dto.CatalogSummaryResponse{
		Total:          s.Total,
		Active:         s.Active,
		OutOfStock:     s.OutOfStock,
		InventoryValue: s.InventoryValue,
	}, nil
}

// Create crea un producto en la empresa resuelta por el alcance: el admin la
// elige explícitamente, el cliente usa siempre la suya.
func (uc *CatalogUseCase) Create(scope catalog.Scope, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	companyID, err := scope.ResolveCompany(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica un merge parcial por (empresa, producto). Devuelve nil si el
// par no resuelve a un producto existente.
func (uc *CatalogUseCase) Update(scope catalog.Scope, companyID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !scope.CanAccess(companyID) {
		return nil, domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByCompanyAndID(companyID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ToggleStatus alterna Activo↔Pausado. "Sin Stock" nunca es destino: un
// producto en cualquier estado distinto de Activo pasa a Activo, y Activo
// pasa a Pausado, igual que el botón Pausar/Activar del dashboard.
func (uc *CatalogUseCase) ToggleStatus(scope catalog.Scope, companyID, productID string) (*dto.ProductResponse, error) {
	if !scope.CanAccess(companyID) {
		return nil, domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByCompanyAndID(companyID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.Status == entity.StatusActive {
		product.Status = entity.StatusPaused
	} else {
		product.Status = entity.StatusActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina por par exacto (empresa, producto) y confirma el par para
// que el front parchee su estado local sin re-fetch. Idempotente.
func (uc *CatalogUseCase) Delete(scope catalog.Scope, companyID, productID string) (*dto.DeleteProductResponse, error) {
	if !scope.CanAccess(companyID) {
		return nil, domain.ErrForbidden
	}
	if err := uc.productRepo.Delete(companyID, productID); err != nil {
		return nil, err
	}
	return &dto.DeleteProductResponse{CompanyID: companyID, ProductID: productID, Deleted: true}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
