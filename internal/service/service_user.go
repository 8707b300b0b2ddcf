package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-novel-hub/internal/crypto"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/store"
	"github.com/MKhiriev/go-novel-hub/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// GetUser returns the public part of the user profile.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user.Public(), nil
}

// UpdateUser writes the non-nil fields of update. A new plaintext password is
// hashed here; the store only ever sees the digest.
func (s *userService) UpdateUser(ctx context.Context, callerID int64, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	if callerID != update.ID {
		log.Warn().Int64("caller_id", callerID).Int64("id", update.ID).Msg("attempt to update another user")
		return ErrForbidden
	}

	if update.Password != nil {
		digest, err := s.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Int64("id", update.ID).Msg("password hashing failed")
			return fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
		update.PasswordHash = &digest
		update.Password = nil
	}

	if update.IsEmpty() {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.UpdateUser(ctx, update); err != nil {
		log.Err(err).Int64("id", update.ID).Msg("user update failed")
		return fmt.Errorf("error updating user: %w", err)
	}

	return nil
}

// DeleteUser removes the account. Novels and social rows of the user stay.
func (s *userService) DeleteUser(ctx context.Context, callerID, id int64) error {
	log := logger.FromContext(ctx)

	if callerID != id {
		log.Warn().Int64("caller_id", callerID).Int64("id", id).Msg("attempt to delete another user")
		return ErrForbidden
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion failed")
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}
