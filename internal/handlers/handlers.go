// Package handlers translates service results into HTTP responses: absence
// becomes 404, malformed input 400, caller cancellation 499, and store
// failures 500.
package handlers

import (
	"context"
	"errors"
	"log"

	"finledger/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// storeError maps an unexpected service error onto its transport status.
func storeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return response.ClientClosedRequest(c)
	}
	log.Printf("store error on %s %s: %v", c.Method(), c.Path(), err)
	return response.ServerError(c, "internal server error")
}

// parseID parses a surrogate key path parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
