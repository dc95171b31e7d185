package services

import (
	"errors"
)

// Sentinel errors returned by the service layer. Controllers map them to
// HTTP statuses with errors.Is; anything else is a store failure and
// surfaces as a 500.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("already exists")
)
