package handlers

import (
	"errors"

	"finledger/internal/services/ledger"
	"finledger/internal/utils/pagination"
	"finledger/internal/utils/response"
	"finledger/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	svc ledger.Service
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(svc ledger.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	transactions, err := h.svc.GetTransactions(c.UserContext(), p.Page, p.Limit)
	if err != nil {
		return storeError(c, err)
	}
	if len(transactions) == 0 {
		return response.NotFound(c, "no transactions found")
	}
	return response.OK(c, transactions)
}

func (h *TransactionHandler) GetHighVolumeTransactions(c *fiber.Ctx) error {
	threshold, err := decimal.NewFromString(c.Params("threshold"))
	if err != nil {
		return response.BadRequest(c, "invalid threshold amount")
	}
	p := pagination.ParseFromRequest(c)

	transactions, err := h.svc.GetHighVolumeTransactions(c.UserContext(), threshold, p.Page, p.Limit)
	if err != nil {
		return storeError(c, err)
	}
	if len(transactions) == 0 {
		return response.NotFound(c, "no transactions found")
	}
	return response.OK(c, transactions)
}

func (h *TransactionHandler) GetTransactionByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	transaction, err := h.svc.GetTransactionByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			return response.NotFound(c, "transaction not found")
		}
		return storeError(c, err)
	}
	return response.OK(c, transaction)
}

func (h *TransactionHandler) AddTransaction(c *fiber.Ctx) error {
	req, err := parseTransactionBody(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	id, err := h.svc.AddTransaction(c.UserContext(), *req)
	if err != nil {
		return storeError(c, err)
	}
	return response.Created(c, fiber.Map{"id": id})
}

func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}
	req, err := parseTransactionBody(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ok, err := h.svc.UpdateTransaction(c.UserContext(), id, *req)
	if err != nil {
		return storeError(c, err)
	}
	if !ok {
		return response.NotFound(c, "transaction not found")
	}
	return response.NoContent(c)
}

func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	ok, err := h.svc.DeleteTransaction(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	if !ok {
		return response.NotFound(c, "transaction not found")
	}
	return response.NoContent(c)
}

func parseTransactionBody(c *fiber.Ctx) (*ledger.AddOrUpdateTransactionRequest, error) {
	var req ledger.AddOrUpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return &req, nil
}
