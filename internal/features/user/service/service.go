package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "user-api/internal/common/errors"
	"user-api/internal/common/logger"
	"user-api/internal/features/user/mapper"
	"user-api/internal/features/user/models"
	"user-api/internal/features/user/repository"
)

type userService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	sessionTTL time.Duration
	hashCost   int
	now        func() time.Time
	newToken   func() string
}

func NewUserService(users repository.UserRepository, sessions repository.SessionRepository, sessionTTL time.Duration) UserService {
	return &userService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
		newToken:   uuid.NewString,
	}
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.CreateResult, error) {
	user, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	stored, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, storeError("user.insert", err)
	}

	logger.Info().
		Str("username", stored.Username).
		Str("id", stored.ID.Hex()).
		Msg("User created")

	return &models.CreateResult{Result: 1, Object: stored}, nil
}

func (s *userService) CreateWithArray(ctx context.Context, reqs []models.CreateUserRequest) (*models.BatchResult, error) {
	return s.createMany(ctx, reqs)
}

func (s *userService) CreateWithList(ctx context.Context, reqs []models.CreateUserRequest) (*models.BatchResult, error) {
	return s.createMany(ctx, reqs)
}

// createMany validates the whole batch before writing any of it.
func (s *userService) createMany(ctx context.Context, reqs []models.CreateUserRequest) (*models.BatchResult, error) {
	if len(reqs) == 0 {
		return nil, apperrors.NewValidationError("body", "must contain at least one user")
	}

	users := make([]*models.User, 0, len(reqs))
	for i, req := range reqs {
		user, err := s.prepare(req)
		if err != nil {
			if appErr, ok := apperrors.As(err); ok {
				appErr.WithDetail("index", i)
			}
			return nil, err
		}
		users = append(users, user)
	}

	stored, err := s.users.InsertMany(ctx, users)
	if err != nil {
		return nil, storeError("user.insert_many", err)
	}

	logger.Info().Int("count", len(stored)).Msg("Users created")

	return &models.BatchResult{Result: 1, Count: len(stored), Objects: stored}, nil
}

func (s *userService) GetUserByName(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindOne(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUserNotFoundError(username, msgUserNotFound)
		}
		return nil, storeError("user.find", err)
	}
	return user, nil
}

// UpdateUser merges the fields present in req into every user named username.
// Zero matched documents is reported as not found.
func (s *userService) UpdateUser(ctx context.Context, req models.UpdateUserRequest, username string) (*models.MessageResponse, error) {
	fields := mapper.ToUpdateFields(req)
	if err := validatePatch(fields); err != nil {
		// An unknown user is reported before a bad patch.
		if _, findErr := s.users.FindOne(ctx, username); findErr != nil {
			if errors.Is(findErr, repository.ErrNotFound) {
				return nil, apperrors.NewUserNotFoundError(username, msgUpdateNotFound)
			}
			return nil, storeError("user.find", findErr)
		}
		return nil, err
	}

	if pw, ok := fields[models.FieldPassword].(string); ok {
		hash, err := s.hash(pw)
		if err != nil {
			return nil, err
		}
		fields[models.FieldPassword] = hash
	}

	matched, err := s.users.UpdateMany(ctx, username, fields)
	if err != nil {
		return nil, storeError("user.update", err)
	}
	if matched == 0 {
		return nil, apperrors.NewUserNotFoundError(username, msgUpdateNotFound)
	}

	logger.Info().
		Str("username", username).
		Int64("matched", matched).
		Msg("User updated")

	return &models.MessageResponse{Message: msgUpdated}, nil
}

// DeleteUser removes every user named username. Deleting an absent user succeeds.
func (s *userService) DeleteUser(ctx context.Context, username string) error {
	deleted, err := s.users.DeleteMany(ctx, username)
	if err != nil {
		return storeError("user.delete", err)
	}

	logger.Info().
		Str("username", username).
		Int64("deleted", deleted).
		Msg("User deleted")

	return nil
}

// LoginUser trims its credentials the way creation trims the stored ones.
func (s *userService) LoginUser(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	user, err := s.users.FindOne(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(msgInvalidCredentials)
		}
		return nil, storeError("user.find", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Warn().Str("username", username).Msg("Login rejected")
		return nil, apperrors.NewUnauthorizedError(msgInvalidCredentials)
	}

	token := s.newToken()
	if err := s.sessions.Save(ctx, token, user.Username, s.sessionTTL); err != nil {
		return nil, apperrors.NewCacheError("session.save", err)
	}

	logger.Info().Str("username", user.Username).Msg("User logged in")

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: s.now().Add(s.sessionTTL).UTC(),
	}, nil
}

// LogoutUser ends the session behind token. Unknown or empty tokens are a no-op.
func (s *userService) LogoutUser(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	username, err := s.sessions.Get(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return apperrors.NewCacheError("session.get", err)
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		return apperrors.NewCacheError("session.delete", err)
	}

	logger.Info().Str("username", username).Msg("User logged out")
	return nil
}

// prepare trims, validates and hashes a creation request.
func (s *userService) prepare(req models.CreateUserRequest) (*models.User, error) {
	user := mapper.ToUser(req)

	required := []struct {
		field string
		value string
	}{
		{models.FieldUsername, user.Username},
		{models.FieldEmail, user.Email},
		{models.FieldPassword, user.Password},
		{models.FieldPhone, user.Phone},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, apperrors.NewValidationError(r.field, "is required")
		}
	}

	hash, err := s.hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	return user, nil
}

func validatePatch(fields map[string]interface{}) error {
	if len(fields) == 0 {
		return apperrors.NewValidationError("body", "has no fields to update")
	}
	for _, name := range []string{models.FieldUsername, models.FieldEmail, models.FieldPassword, models.FieldPhone} {
		if v, ok := fields[name]; ok && v == "" {
			return apperrors.NewValidationError(name, "is required")
		}
	}
	return nil
}

func (s *userService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		// bcrypt rejects passwords longer than 72 bytes.
		return "", apperrors.NewValidationError(models.FieldPassword, fmt.Sprintf("cannot be stored: %v", err))
	}
	return string(hash), nil
}

func storeError(op string, err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return apperrors.NewConflictError("user", err)
	}
	return apperrors.NewDatabaseError(op, err)
}
