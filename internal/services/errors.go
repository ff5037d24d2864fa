package services

import "errors"

var (
	// ErrUserDuplicate indicates the username or email is already taken.
	ErrUserDuplicate = errors.New("username or email already exists")
	// ErrInvalidCredentials indicates login failure. Unresolvable accounts
	// and wrong passwords both collapse to this error.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmployeeNotFound indicates the employee record does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
)
