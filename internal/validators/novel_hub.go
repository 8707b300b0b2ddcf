package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-novel-hub/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldNovelID  = "novel_id"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldText     = "text"

	// FieldUpdateNotEmpty requires a UserUpdate to carry at least one field.
	FieldUpdateNotEmpty = "update_not_empty"
)

// maxNameLength matches the VARCHAR(255) columns of the postgres schema.
const maxNameLength = 255

// NovelHubValidator implements Validator for the user, novel and comment
// models accepted by the API. Both value and pointer forms are supported.
type NovelHubValidator struct {
}

// NewNovelHubValidator constructs a new NovelHubValidator and returns it as
// the Validator interface.
func NewNovelHubValidator() Validator {
	return &NovelHubValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.User / *models.User (registration)
//   - models.Credentials / *models.Credentials (login)
//   - models.UserUpdate / *models.UserUpdate
//   - models.Novel / *models.Novel (upload)
//   - models.NovelUpdate / *models.NovelUpdate
//   - models.Comment / *models.Comment
//
// Returns ErrUnsupportedType for anything else. When fields is empty the
// default set of the type is checked.
func (v *NovelHubValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)

	case models.Novel:
		return v.validateNovel(ctx, value, fields...)
	case *models.Novel:
		return v.validateNovel(ctx, *value, fields...)

	case models.NovelUpdate:
		return v.validateNovelUpdate(ctx, value, fields...)
	case *models.NovelUpdate:
		return v.validateNovelUpdate(ctx, *value, fields...)

	case models.Comment:
		return v.validateComment(ctx, value, fields...)
	case *models.Comment:
		return v.validateComment(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks a registration request.
// Default fields: Username, Email, Password.
func (v *NovelHubValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			if user.ID <= 0 {
				err = ErrInvalidID
			}
		case FieldUsername:
			err = checkUsername(user.Username)
		case FieldEmail:
			err = checkEmail(user.Email)
		case FieldPassword:
			err = checkPassword(user.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return fmt.Errorf("invalid user: %w", err)
		}
	}

	return nil
}

// validateCredentials checks a login request.
// Default fields: Username, Password. Email rules are not applied.
func (v *NovelHubValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate checks a partial profile update. Only the fields that
// are present are validated.
// Default fields: ID, UpdateNotEmpty, Username, Email, Password.
func (v *NovelHubValidator) validateUserUpdate(ctx context.Context, update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdateNotEmpty, FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			if update.ID <= 0 {
				err = ErrInvalidID
			}
		case FieldUpdateNotEmpty:
			if update.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldUsername:
			if update.Username != nil {
				err = checkUsername(*update.Username)
			}
		case FieldEmail:
			if update.Email != nil {
				err = checkEmail(*update.Email)
			}
		case FieldPassword:
			if update.Password != nil {
				err = checkPassword(*update.Password)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return fmt.Errorf("invalid user update: %w", err)
		}
	}

	return nil
}

// validateNovel checks an upload.
// Default fields: Title, UserID.
func (v *NovelHubValidator) validateNovel(ctx context.Context, novel models.Novel, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if novel.ID <= 0 {
				return ErrInvalidID
			}
		case FieldTitle:
			if err := checkTitle(novel.Title); err != nil {
				return err
			}
		case FieldUserID:
			if novel.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Default fields: ID, UserID, Title.
func (v *NovelHubValidator) validateNovelUpdate(ctx context.Context, update models.NovelUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID <= 0 {
				return ErrInvalidID
			}
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if err := checkTitle(update.Title); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Default fields: NovelID, UserID, Text.
func (v *NovelHubValidator) validateComment(ctx context.Context, comment models.Comment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNovelID, FieldUserID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldNovelID:
			if comment.NovelID <= 0 {
				return ErrInvalidNovelID
			}
		case FieldUserID:
			if comment.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldText:
			if strings.TrimSpace(comment.Text) == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > maxNameLength {
		return fmt.Errorf("%w: username", ErrValueTooLong)
	}
	return nil
}

func checkEmail(email string) error {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t\n") {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(email) > maxNameLength {
		return fmt.Errorf("%w: email", ErrValueTooLong)
	}
	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxNameLength {
		return fmt.Errorf("%w: title", ErrValueTooLong)
	}
	return nil
}
