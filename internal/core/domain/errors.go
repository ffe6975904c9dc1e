package domain

import "errors"

// Token verification failures, ordered from "nothing presented" to
// "presented but stale". The API layer maps all four to 401.
var (
	ErrTokenMissing   = errors.New("missing bearer token")
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token expired")
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserExists         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrPayloadTooLarge    = errors.New("payload exceeds size limit")
)
