package service

// Public messages of the user service failures.
const (
	msgUserNotFound       = "user not found"
	msgUpdateNotFound     = "not found"
	msgUpdated            = "updated"
	msgInvalidCredentials = "invalid username or password"
)
