package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong username or password")

	ErrTokenMissing        = errors.New("token is missing")
	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrForbidden = errors.New("operation is not allowed for this user")

	ErrPasswordHashingFailed = errors.New("password hashing failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
