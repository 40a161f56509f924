package contact

import "errors"

var (
	ErrFieldsRequired = errors.New("all fields are required")
	ErrInvalidEmail   = errors.New("enter a valid email address")
)
