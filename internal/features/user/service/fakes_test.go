package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"user-api/internal/features/user/models"
	"user-api/internal/features/user/repository"
)

// fakeUserRepo is an in-memory record store with injectable failures.
type fakeUserRepo struct {
	users []*models.User

	insertErr error
	findErr   error
	updateErr error
	deleteErr error
}

func (f *fakeUserRepo) Insert(_ context.Context, u *models.User) (*models.User, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	u.ID = primitive.NewObjectID()
	cp := *u
	f.users = append(f.users, &cp)
	return u, nil
}

func (f *fakeUserRepo) InsertMany(ctx context.Context, users []*models.User) ([]*models.User, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	for _, u := range users {
		if _, err := f.Insert(ctx, u); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (f *fakeUserRepo) FindOne(_ context.Context, username string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) UpdateMany(_ context.Context, username string, fields map[string]interface{}) (int64, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	var n int64
	for _, u := range f.users {
		if u.Username != username {
			continue
		}
		n++
		for k, v := range fields {
			switch k {
			case models.FieldUsername:
				u.Username = v.(string)
			case models.FieldEmail:
				u.Email = v.(string)
			case models.FieldPassword:
				u.Password = v.(string)
			case models.FieldPhone:
				u.Phone = v.(string)
			case models.FieldFirstName:
				u.FirstName = v.(string)
			case models.FieldLastName:
				u.LastName = v.(string)
			case models.FieldUserStatus:
				u.UserStatus = v.(int32)
			}
		}
	}
	return n, nil
}

func (f *fakeUserRepo) DeleteMany(_ context.Context, username string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	kept := f.users[:0]
	var n int64
	for _, u := range f.users {
		if u.Username == username {
			n++
			continue
		}
		kept = append(kept, u)
	}
	f.users = kept
	return n, nil
}

type fakeSessionRepo struct {
	sessions map[string]string
	ttls     map[string]time.Duration

	saveErr   error
	getErr    error
	deleteErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeSessionRepo) Save(_ context.Context, token, username string, ttl time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions[token] = username
	f.ttls[token] = ttl
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, token string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	username, ok := f.sessions[token]
	if !ok {
		return "", repository.ErrNotFound
	}
	return username, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.sessions, token)
	return nil
}
