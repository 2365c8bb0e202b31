package service

import "github.com/kilhoshin/aissam/internal/pkg/serverutils"

// Service-level errors mapped to HTTP responses by the error handler
// middleware. Messages match what the frontend displays.
var (
	ErrEmailTaken         = serverutils.BadRequest("Email already registered")
	ErrInvalidCredentials = serverutils.Unauthorized("Incorrect email or password")
	ErrUserNotFound       = serverutils.NotFound("User not found")
	ErrSubjectNotFound    = serverutils.NotFound("Subject not found")
	ErrSessionNotFound    = serverutils.NotFound("Chat session not found")
)
