package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medsupply/stock-api/internal/application/usecase"
)

// CountryHandler serves the read-only reference countries.
type CountryHandler struct {
	uc *usecase.CountryUseCase
}

// NewCountryHandler builds the handler.
func NewCountryHandler(uc *usecase.CountryUseCase) *CountryHandler {
	return &CountryHandler{uc: uc}
}

// List GET /api/countries
func (h *CountryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
