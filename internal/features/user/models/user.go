package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Stored document field names.
const (
	FieldID         = "_id"
	FieldUsername   = "username"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldPhone      = "phone"
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldUserStatus = "userStatus"
)

// User is the single document type of the users collection.
// @Description User account
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"665f1c2e9b1d4c3a2f0e8a11"`
	Username   string             `bson:"username" json:"username" example:"alice"`
	Email      string             `bson:"email" json:"email" example:"a@x.com"`
	Password   string             `bson:"password" json:"-"`
	Phone      string             `bson:"phone" json:"phone" example:"555"`
	FirstName  string             `bson:"firstName,omitempty" json:"firstName,omitempty" example:"Alice"`
	LastName   string             `bson:"lastName,omitempty" json:"lastName,omitempty" example:"Liddell"`
	UserStatus int32              `bson:"userStatus" json:"userStatus" example:"0"`
}

// CreateUserRequest is the body of POST /user and one element of the batch endpoints.
// @Description User creation payload
type CreateUserRequest struct {
	Username   string `json:"username" form:"username" example:"alice"`
	Email      string `json:"email" form:"email" example:"a@x.com"`
	Password   string `json:"password" form:"password" example:"pw"`
	Phone      string `json:"phone" form:"phone" example:"555"`
	FirstName  string `json:"firstName" form:"firstName" example:"Alice"`
	LastName   string `json:"lastName" form:"lastName" example:"Liddell"`
	UserStatus *int32 `json:"userStatus" form:"userStatus" example:"0"`
}

// UpdateUserRequest is a partial user; nil fields are left untouched.
// @Description Partial user update, only present fields change
type UpdateUserRequest struct {
	Username   *string `json:"username" form:"username" example:"alice"`
	Email      *string `json:"email" form:"email" example:"a2@x.com"`
	Password   *string `json:"password" form:"password"`
	Phone      *string `json:"phone" form:"phone"`
	FirstName  *string `json:"firstName" form:"firstName"`
	LastName   *string `json:"lastName" form:"lastName"`
	UserStatus *int32  `json:"userStatus" form:"userStatus"`
}

// LoginRequest is bound from the query string of GET /user/login.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
