package domain

import "errors"

// ErrInvalidCredentials covers every authentication failure: unknown login,
// wrong password, invalid or expired token, and a token whose subject no
// longer exists. Keeping them indistinguishable prevents user enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrUserExists = errors.New("user with this login already exists")
var ErrUserNotFound = errors.New("user not found")
