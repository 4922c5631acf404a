package repository

import "errors"

// Business rejections surfaced to the user verbatim. Anything else coming out
// of this package is a storage failure wrapped with context.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUserNotFound      = errors.New("user not found")
)
