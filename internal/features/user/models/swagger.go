package models

import "time"

// CreateResult is returned by POST /user, with result 0 and a message on failure.
type CreateResult struct {
	Result  int    `json:"result" example:"1" enums:"0,1"`
	Object  *User  `json:"object,omitempty"`
	Message string `json:"message,omitempty" example:"email is required"`
}

// BatchResult is returned by the createWithArray and createWithList endpoints.
type BatchResult struct {
	Result  int     `json:"result" example:"1"`
	Count   int     `json:"count" example:"2"`
	Objects []*User `json:"objects"`
}

// MessageResponse carries a short status message.
type MessageResponse struct {
	Message string `json:"message" example:"updated"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token     string    `json:"token" example:"2b1f0c1e-6f1c-4a55-9d43-1f1a2b3c4d5e"`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-03-15T14:30:00Z"`
}

// ErrorResponse documents the error body rendered by the error middleware.
type ErrorResponse struct {
	Error     string `json:"error" example:"user not found"`
	Code      string `json:"code" example:"USER_NOT_FOUND"`
	RequestID string `json:"request_id" example:"3f0c2f8e-1d3b-4b7a-9a8e-0c9d1e2f3a4b"`
}
