package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID        = errors.New("invalid ID")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidNovelID   = errors.New("invalid novel ID")
	ErrEmptyUsername    = errors.New("username is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyText        = errors.New("comment text is required")
	ErrValueTooLong     = errors.New("value is too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
