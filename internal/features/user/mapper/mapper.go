package mapper

import (
	"strings"

	"user-api/internal/features/user/models"
)

// ToUser maps a creation request to a new document with trimmed text fields.
// A missing userStatus defaults to 0.
func ToUser(req models.CreateUserRequest) *models.User {
	user := &models.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.TrimSpace(req.Email),
		Password:  strings.TrimSpace(req.Password),
		Phone:     strings.TrimSpace(req.Phone),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.UserStatus != nil {
		user.UserStatus = *req.UserStatus
	}
	return user
}

// ToUpdateFields returns the stored fields present in req, keyed by document field name.
// Required text fields are trimmed the same way ToUser trims them.
func ToUpdateFields(req models.UpdateUserRequest) map[string]interface{} {
	fields := make(map[string]interface{})

	trimmed := map[string]*string{
		models.FieldUsername: req.Username,
		models.FieldEmail:    req.Email,
		models.FieldPassword: req.Password,
		models.FieldPhone:    req.Phone,
	}
	for name, v := range trimmed {
		if v != nil {
			fields[name] = strings.TrimSpace(*v)
		}
	}

	if req.FirstName != nil {
		fields[models.FieldFirstName] = *req.FirstName
	}
	if req.LastName != nil {
		fields[models.FieldLastName] = *req.LastName
	}
	if req.UserStatus != nil {
		fields[models.FieldUserStatus] = *req.UserStatus
	}

	return fields
}
