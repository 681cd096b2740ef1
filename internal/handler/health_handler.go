package handler

import (
	"context"
	"time"

	"quizcafe/internal/domain"
	"quizcafe/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// Health reports whether the backing store answers a ping.
func Health(store domain.Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if err := store.PingContext(ctx); err != nil {
			return domain.NewInternalError("Store is unreachable", err)
		}
		return c.JSON(dto.HealthResponse{Success: true, Status: "ok"})
	}
}
