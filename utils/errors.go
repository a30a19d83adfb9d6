// utils/errors.go
package utils

import "errors"

var (
	ErrOwnerIDNotFound = errors.New("authentication required: owner ID not found")
	ErrUnauthorized    = errors.New("unauthorized access")
)
