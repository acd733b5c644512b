package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"user-api/internal/features/user/models"
)

func TestToUser_TrimsRequiredFields(t *testing.T) {
	status := int32(2)
	user := ToUser(models.CreateUserRequest{
		Username:   "  alice ",
		Email:      "a@x.com\n",
		Password:   " pw ",
		Phone:      "\t555",
		FirstName:  "Alice",
		UserStatus: &status,
	})

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "pw", user.Password)
	assert.Equal(t, "555", user.Phone)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, int32(2), user.UserStatus)
	assert.True(t, user.ID.IsZero())
}

func TestToUser_DefaultStatus(t *testing.T) {
	user := ToUser(models.CreateUserRequest{Username: "bob"})
	assert.Equal(t, int32(0), user.UserStatus)
}

func TestToUpdateFields_OnlyPresentFields(t *testing.T) {
	email := " a2@x.com "
	last := "Doe"

	fields := ToUpdateFields(models.UpdateUserRequest{Email: &email, LastName: &last})

	assert.Equal(t, map[string]interface{}{
		models.FieldEmail:    "a2@x.com",
		models.FieldLastName: "Doe",
	}, fields)
}

func TestToUpdateFields_Empty(t *testing.T) {
	assert.Empty(t, ToUpdateFields(models.UpdateUserRequest{}))
}
