package service

import (
	"context"

	"user-api/internal/features/user/models"
)

// UserService is the stateless facade over the user record store. Every call
// blocks until the store answers and settles exactly once.
type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.CreateResult, error)
	CreateWithArray(ctx context.Context, reqs []models.CreateUserRequest) (*models.BatchResult, error)
	CreateWithList(ctx context.Context, reqs []models.CreateUserRequest) (*models.BatchResult, error)
	GetUserByName(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, req models.UpdateUserRequest, username string) (*models.MessageResponse, error)
	DeleteUser(ctx context.Context, username string) error
	LoginUser(ctx context.Context, username, password string) (*models.LoginResponse, error)
	LogoutUser(ctx context.Context, token string) error
}
