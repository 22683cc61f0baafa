package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/application/usecase"
	"github.com/tu-usuario/ecommercebot-api/internal/domain"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/catalog"
	"github.com/tu-usuario/ecommercebot-api/internal/infrastructure/storage"
)

// CatalogHandler maneja el catálogo de productos (protegido).
// Las rutas de producto llevan siempre la clave compuesta /:companyID/:id.
type CatalogHandler struct {
	uc     *usecase.CatalogUseCase
	images *storage.ImageService
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, images *storage.ImageService) *CatalogHandler {
	return &CatalogHandler{uc: uc, images: images}
}

// List godoc
// @Summary      Listar productos del alcance con filtros conjuntivos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        q           query  string  false  "Texto: substring sobre nombre o descripción"
// @Param        company_id  query  string  false  "Filtro por empresa (solo admin)"
// @Param        status      query  string  false  "todos | activos | sin_stock"  default(todos)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	class := c.Query("status", catalog.ClassAll)
	if class != catalog.ClassAll && class != catalog.ClassActive && class != catalog.ClassOutOfStock {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser todos, activos o sin_stock"})
	}
	filter := catalog.Filter{
		Query:     c.Query("q"),
		CompanyID: c.Query("company_id"),
		Class:     class,
	}
	out, err := h.uc.List(scopeFromCtx(c), filter)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Agregados del catálogo completo del alcance (sin filtros)
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogSummaryResponse
// @Router       /api/catalog/summary [get]
func (h *CatalogHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(scopeFromCtx(c))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto; company_id solo admin"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/products [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(scopeFromCtx(c), in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (merge parcial) por clave compuesta
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/products/{companyID}/{id} [patch]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(scopeFromCtx(c), c.Params("companyID"), c.Params("id"), in)
	if err != nil {
		return catalogError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// ToggleStatus godoc
// @Summary      Alternar estado Activo/Pausado de un producto
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/products/{companyID}/{id}/toggle [post]
func (h *CatalogHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(scopeFromCtx(c), c.Params("companyID"), c.Params("id"))
	if err != nil {
		return catalogError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto por clave compuesta
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del producto"
// @Success      200  {object}  dto.DeleteProductResponse
// @Router       /api/catalog/products/{companyID}/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(scopeFromCtx(c), c.Params("companyID"), c.Params("id"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// PresignImageUpload godoc
// @Summary      URL prefirmada para subir una imagen de producto
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ImageUploadResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/catalog/images/upload-url [post]
func (h *CatalogHandler) PresignImageUpload(c *fiber.Ctx) error {
	if !h.images.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "IMAGES_DISABLED", Message: "almacenamiento de imágenes no configurado"})
	}
	key, url, err := h.images.PresignUpload(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImageUploadResponse{Key: key, UploadURL: url})
}

// PresignImageDownload godoc
// @Summary      URL prefirmada para leer una imagen de producto
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        key  query  string  true  "Key devuelta al subir"
// @Success      200  {object}  dto.ImageDownloadResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/catalog/images/download-url [get]
func (h *CatalogHandler) PresignImageDownload(c *fiber.Ctx) error {
	if !h.images.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "IMAGES_DISABLED", Message: "almacenamiento de imágenes no configurado"})
	}
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "key es requerida"})
	}
	url, err := h.images.PresignDownload(c.Context(), key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImageDownloadResponse{Key: key, DownloadURL: url})
}

// catalogError mapea errores de dominio a status HTTP.
func catalogError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado a la empresa solicitada"})
	case domain.ErrCompanyRequired:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "COMPANY_REQUIRED", Message: "company_id es requerido"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
