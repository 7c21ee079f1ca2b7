package entity

import "errors"

// Sentinel errors shared across usecase and handler layers. Handlers map
// these to HTTP statuses with errors.Is; anything unrecognized is reported
// as a generic server error so upstream detail never reaches the client.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrUpstream           = errors.New("upstream failure")
)
