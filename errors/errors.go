package errors

import "fmt"

var (
	ErrInvalidEmail       = fmt.Errorf("invalid email")
	ErrInvalidEmailFormat = fmt.Errorf("invalid email format")
	ErrInvalidName        = fmt.Errorf("invalid name")
	ErrPasswordTooShort   = fmt.Errorf("password too short")
)
