package repository

import (
	"context"
	"errors"
	"time"

	"user-api/internal/features/user/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository is the record store holding user documents. Lookups match on username
// and no uniqueness is enforced, so FindOne returns the first match in store order.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	InsertMany(ctx context.Context, users []*models.User) ([]*models.User, error)
	FindOne(ctx context.Context, username string) (*models.User, error)
	UpdateMany(ctx context.Context, username string, fields map[string]interface{}) (int64, error)
	DeleteMany(ctx context.Context, username string) (int64, error)
}

// SessionRepository maps login tokens to usernames until they expire.
type SessionRepository interface {
	Save(ctx context.Context, token, username string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
