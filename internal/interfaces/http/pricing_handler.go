package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/application/pricing"
)

// PricingHandler expone el motor de precios sin persistir nada.
type PricingHandler struct {
	uc *pricing.QuoteUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *pricing.QuoteUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Quote godoc
// @Summary      Cotizar una composición
// @Description  Calcula peso bruto, costo de compra, cargos, GST y precio de venta.
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "materiales, piedras, merma y cargo"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/quote [post]
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Quote(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Recalculate godoc
// @Summary      Recalcular campos derivados del formulario
// @Description  Devuelve peso bruto, costo de compra y precio de venta respetando la edición manual del costo.
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecalculateRequest  true  "entradas, campos actuales y edición"
// @Success      200   {object}  dto.RecalculateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/recalculate [post]
func (h *PricingHandler) Recalculate(c *fiber.Ctx) error {
	var in dto.RecalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Recalculate(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
