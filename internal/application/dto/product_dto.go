package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// CompanyID es la empresa destino: obligatorio para admin, ignorado/validado
// contra la propia para cliente.
type CreateProductRequest struct {
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"min=0"`
	Image       string          `json:"image"`
	Status      string          `json:"status"`
}

// UpdateProductRequest actualización parcial por (empresa, producto).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Image       *string          `json:"image"`
	Status      *string          `json:"status"`
}

// ProductResponse salida de un producto. CompanyID siempre va estampado con
// la empresa dueña real, venga de la consulta que venga.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse productos visibles tras resolución de alcance y filtros.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CatalogSummaryResponse agregados del catálogo completo del alcance.
type CatalogSummaryResponse struct {
	Total          int             `json:"total"`
	Active         int             `json:"active"`
	OutOfStock     int             `json:"out_of_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// DeleteProductResponse confirma el par borrado para que el front parchee su
// estado local sin re-fetch.
type DeleteProductResponse struct {
	CompanyID string `json:"company_id"`
	ProductID string `json:"product_id"`
	Deleted   bool   `json:"deleted"`
}

// ImageUploadResponse URL prefirmada de subida y key a guardar en el producto.
type ImageUploadResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

// ImageDownloadResponse URL prefirmada de lectura de una imagen.
type ImageDownloadResponse struct {
	Key         string `json:"key"`
	DownloadURL string `json:"download_url"`
}
