package handlers

import (
	"finledger/internal/services/summary"
	"finledger/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type SummaryHandler struct {
	svc summary.Service
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(svc summary.Service) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

func (h *SummaryHandler) ByTransactionType(c *fiber.Ctx) error {
	summaries, err := h.svc.ByTransactionType(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return response.OK(c, summaries)
}

func (h *SummaryHandler) ByUser(c *fiber.Ctx) error {
	summaries, err := h.svc.ByUser(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return response.OK(c, summaries)
}
