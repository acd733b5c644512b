package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"user-api/internal/features/user/models"
	"user-api/internal/features/user/repository"
)

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) repository.UserRepository {
	return &userRepository{col: col}
}

// Insert stores user and sets its generated ID.
func (r *userRepository) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return nil, translate("insert user", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}

// InsertMany stores users in order; nothing after the first failing document is written.
func (r *userRepository) InsertMany(ctx context.Context, users []*models.User) ([]*models.User, error) {
	docs := make([]interface{}, len(users))
	for i, u := range users {
		docs[i] = u
	}

	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return nil, translate("insert users", err)
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(users) {
			users[i].ID = oid
		}
	}
	return users, nil
}

func (r *userRepository) FindOne(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{models.FieldUsername: username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, translate("find user", err)
	}
	return &user, nil
}

// UpdateMany merges fields into every document with the given username and
// returns how many matched.
func (r *userRepository) UpdateMany(ctx context.Context, username string, fields map[string]interface{}) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{models.FieldUsername: username},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		return 0, translate("update users", err)
	}
	return res.MatchedCount, nil
}

func (r *userRepository) DeleteMany(ctx context.Context, username string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{models.FieldUsername: username})
	if err != nil {
		return 0, translate("delete users", err)
	}
	return res.DeletedCount, nil
}

func translate(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %v", op, repository.ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
