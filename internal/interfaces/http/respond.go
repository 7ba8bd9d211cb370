package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/medsupply/stock-api/internal/application/dto"
	"github.com/medsupply/stock-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// respondError converts a use-case error into the uniform envelope.
// Business-rule failures keep their message; storage failures are
// logged and masked with a generic message so internals never leak.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("storage failure")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
}

// respondBadBody rejects an unparseable request body.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
}
