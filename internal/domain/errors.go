package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrSeatConflict      = errors.New("seat(s) are invalid or already reserved")
	ErrNotOwner          = errors.New("booking belongs to another user")
	ErrCapacityExceeded  = errors.New("capacity limit reached")
	ErrUserAlreadyExists = errors.New("user already exists with this email")
)
