package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ecommercebot-api/internal/application/dto"
	"github.com/tu-usuario/ecommercebot-api/internal/application/usecase"
)

// BotConfigHandler maneja la configuración del asistente virtual (protegido).
type BotConfigHandler struct {
	uc *usecase.BotConfigUseCase
}

// NewBotConfigHandler construye el handler.
func NewBotConfigHandler(uc *usecase.BotConfigUseCase) *BotConfigHandler {
	return &BotConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración del bot de la empresa (defaults si no hay)
// @Tags         bot
// @Security     Bearer
// @Produce      json
// @Param        company_id  query  string  false  "Empresa (requerido para admin)"
// @Success      200  {object}  dto.BotConfigResponse
// @Router       /api/bot/config [get]
func (h *BotConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(scopeFromCtx(c), c.Query("company_id"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Guardar configuración del bot (merge parcial)
// @Tags         bot
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        company_id  query  string  false  "Empresa (requerido para admin)"
// @Param        body        body   dto.UpdateBotConfigRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.BotConfigResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bot/config [put]
func (h *BotConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBotConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(scopeFromCtx(c), c.Query("company_id"), in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}
