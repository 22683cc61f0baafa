package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ecommercebot-api/internal/application/usecase"
)

// AnalyticsHandler maneja los reportes del dashboard (protegido).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Sales godoc
// @Summary      Serie mensual de ventas del alcance
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "Meses hacia atrás"  default(6)
// @Success      200  {object}  dto.SalesReportResponse
// @Router       /api/analytics/sales [get]
func (h *AnalyticsHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.Context(), scopeFromCtx(c), c.QueryInt("months", 6))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos del alcance
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad"  default(5)
// @Success      200  {array}  dto.TopProductResponse
// @Router       /api/analytics/top-products [get]
func (h *AnalyticsHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.Context(), scopeFromCtx(c), c.QueryInt("limit", 5))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// Channels godoc
// @Summary      Conversiones por canal de venta
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChannelStatsResponse
// @Router       /api/analytics/channels [get]
func (h *AnalyticsHandler) Channels(c *fiber.Ctx) error {
	out, err := h.uc.Channels(c.Context(), scopeFromCtx(c))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// Overview godoc
// @Summary      Totales de plataforma por empresa (solo admin)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PlatformOverviewResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/overview [get]
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context(), scopeFromCtx(c))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}
