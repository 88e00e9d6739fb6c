package handlers

import (
	"errors"

	"finledger/internal/services/user"
	"finledger/internal/utils/pagination"
	"finledger/internal/utils/response"
	"finledger/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc user.Service
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	users, err := h.svc.GetUsers(c.UserContext(), p.Page, p.Limit)
	if err != nil {
		return storeError(c, err)
	}
	if len(users) == 0 {
		return response.NotFound(c, "no users found")
	}
	return response.OK(c, users)
}

func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}

	u, err := h.svc.GetUserByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return response.NotFound(c, "user not found")
		}
		return storeError(c, err)
	}
	return response.OK(c, u)
}

func (h *UserHandler) AddUser(c *fiber.Ctx) error {
	req, err := parseUserBody(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	id, err := h.svc.AddUser(c.UserContext(), *req)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUser) {
			return response.Conflict(c, "user id or email already taken")
		}
		return storeError(c, err)
	}
	return response.Created(c, fiber.Map{"id": id})
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}
	req, err := parseUserBody(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ok, err := h.svc.UpdateUser(c.UserContext(), id, *req)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUser) {
			return response.Conflict(c, "user id or email already taken")
		}
		return storeError(c, err)
	}
	if !ok {
		return response.NotFound(c, "user not found")
	}
	return response.NoContent(c)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}

	ok, err := h.svc.DeleteUser(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	if !ok {
		return response.NotFound(c, "user not found")
	}
	return response.NoContent(c)
}

func parseUserBody(c *fiber.Ctx) (*user.AddOrUpdateUserRequest, error) {
	var req user.AddOrUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return &req, nil
}
