package handler

import (
	"strconv"

	"quizcafe/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// pageParam reads ?page=N. A missing or non-numeric value means page 1.
func pageParam(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

// idParam parses the :id path segment. An id that is not an integer names no
// resource, so it is reported as not found.
func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.NewNotFoundError("Resource not found")
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewError(domain.ErrBadRequest, "Invalid request body", err)
	}
	return nil
}
