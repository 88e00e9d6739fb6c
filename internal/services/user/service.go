// Package user implements user record CRUD. It mirrors the ledger service
// contract shape without any aggregation.
package user

import (
	"context"
	"errors"
	"time"

	"finledger/internal/models"
	"finledger/internal/repositories"
)

// Service errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = repositories.ErrDuplicateUser
)

// Service exposes the user operations.
type Service interface {
	GetUsers(ctx context.Context, page, limit int) ([]UserResponse, error)
	GetUserByID(ctx context.Context, id uint) (*UserResponse, error)
	AddUser(ctx context.Context, req AddOrUpdateUserRequest) (uint, error)
	UpdateUser(ctx context.Context, id uint, req AddOrUpdateUserRequest) (bool, error)
	DeleteUser(ctx context.Context, id uint) (bool, error)
}

type service struct {
	repo repositories.UserRepository
	now  func() time.Time
}

// NewService creates a new user service. The clock may be nil, in which case
// UTC wall time is used.
func NewService(repo repositories.UserRepository, now func() time.Time) Service {
	if repo == nil {
		panic("repo is required")
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{repo: repo, now: now}
}

func (s *service) GetUsers(ctx context.Context, page, limit int) ([]UserResponse, error) {
	users, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = toResponse(u)
	}
	return responses, nil
}

func (s *service) GetUserByID(ctx context.Context, id uint) (*UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toResponse(*u)
	return &resp, nil
}

func (s *service) AddUser(ctx context.Context, req AddOrUpdateUserRequest) (uint, error) {
	now := s.now()
	u := models.User{
		UserID:      req.UserID,
		UserName:    req.UserName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsActive:    req.active(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *service) UpdateUser(ctx context.Context, id uint, req AddOrUpdateUserRequest) (bool, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	merged := models.User{
		ID:          existing.ID,
		UserID:      req.UserID,
		UserName:    req.UserName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsActive:    req.active(),
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   s.now(),
	}
	if err := s.repo.Save(ctx, &merged); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) DeleteUser(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func toResponse(u models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		UserID:      u.UserID,
		UserName:    u.UserName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
