package service

import "errors"

// ErrValidation marks input that fails business rules before any write.
// Handlers translate it to a 400 response.
var ErrValidation = errors.New("validation failed")

// ErrUnauthorized marks a failed admin gate.
// Handlers translate it to a 401 response.
var ErrUnauthorized = errors.New("unauthorized")
