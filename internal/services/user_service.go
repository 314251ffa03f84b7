package services

import (
	"context"
	"fmt"
	"time"

	"tourvisto/internal/models/db_models"
	"tourvisto/internal/models/request_models"
	"tourvisto/internal/models/response_models"
	"tourvisto/internal/repositories"
	"tourvisto/pkg/utils"
)

type UserService interface {
	SyncUser(ctx context.Context, req *request_models.SyncUserRequest) (*response_models.UserResponse, error)
	GetUserByAccountID(ctx context.Context, accountID string) (*response_models.UserResponse, error)
	ListUsers(ctx context.Context, page, pageSize int) (*response_models.UserListResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// SyncUser upserts the record mirrored from the external identity provider.
// Re-syncing refreshes profile fields but never resets status or joined date.
func (s *userService) SyncUser(ctx context.Context, req *request_models.SyncUserRequest) (*response_models.UserResponse, error) {
	if req.AccountID == "" || req.Email == "" {
		return nil, utils.ErrInvalidInput
	}

	user := &db_models.User{
		AccountID: req.AccountID,
		Email:     req.Email,
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		JoinedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	saved, err := s.userRepo.UpsertByAccountID(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	resp := toUserResponse(saved)
	return &resp, nil
}

func (s *userService) GetUserByAccountID(ctx context.Context, accountID string) (*response_models.UserResponse, error) {
	if accountID == "" {
		return nil, utils.ErrInvalidInput
	}

	user, err := s.userRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize int) (*response_models.UserListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	users, total, err := s.userRepo.ListUsers(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return &response_models.UserListResponse{Users: out, Total: total}, nil
}

func toUserResponse(user *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Name:     user.Name,
		ImageURL: user.ImageURL,
		JoinedAt: user.JoinedAt,
		Status:   user.Status,
	}
}
