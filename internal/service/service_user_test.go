package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/mock"
	"github.com/MKhiriev/go-novel-hub/internal/store"
	"github.com/MKhiriev/go-novel-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewUserService(repo, hasher, logger.Nop()), repo, hasher
}

func TestUserService_GetUser(t *testing.T) {
	svc, repo, _ := newTestUserSvc(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(1)).
		Return(models.User{ID: 1, Username: "alice", Email: "a@x.io", PasswordHash: "digest"}, nil)

	user, err := svc.GetUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Username: "alice", Email: "a@x.io"}, user)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, repo, _ := newTestUserSvc(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("password is hashed before the store", func(t *testing.T) {
		svc, repo, hasher := newTestUserSvc(t)

		hasher.EXPECT().Hash("new-secret").Return("digest", nil)
		repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.UserUpdate) error {
				assert.Nil(t, u.Password)
				require.NotNil(t, u.PasswordHash)
				assert.Equal(t, "digest", *u.PasswordHash)
				return nil
			},
		)

		err := svc.UpdateUser(context.Background(), 1, models.UserUpdate{ID: 1, Password: strPtr("new-secret")})
		assert.NoError(t, err)
	})

	t.Run("only email", func(t *testing.T) {
		svc, repo, _ := newTestUserSvc(t)

		update := models.UserUpdate{ID: 1, Email: strPtr("new@x.io")}
		repo.EXPECT().UpdateUser(gomock.Any(), update).Return(nil)

		assert.NoError(t, svc.UpdateUser(context.Background(), 1, update))
	})

	t.Run("another user", func(t *testing.T) {
		svc, _, _ := newTestUserSvc(t)

		err := svc.UpdateUser(context.Background(), 2, models.UserUpdate{ID: 1, Email: strPtr("x@x.io")})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("nothing to update", func(t *testing.T) {
		svc, _, _ := newTestUserSvc(t)

		err := svc.UpdateUser(context.Background(), 1, models.UserUpdate{ID: 1})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, repo, _ := newTestUserSvc(t)

		repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(store.ErrUserAlreadyExists)

		err := svc.UpdateUser(context.Background(), 1, models.UserUpdate{ID: 1, Username: strPtr("bob")})
		assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
	})

	t.Run("hashing fails", func(t *testing.T) {
		svc, _, hasher := newTestUserSvc(t)

		hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("boom"))

		err := svc.UpdateUser(context.Background(), 1, models.UserUpdate{ID: 1, Password: strPtr("x")})
		assert.ErrorIs(t, err, ErrPasswordHashingFailed)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		svc, repo, _ := newTestUserSvc(t)

		repo.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil)

		assert.NoError(t, svc.DeleteUser(context.Background(), 1, 1))
	})

	t.Run("another user", func(t *testing.T) {
		svc, _, _ := newTestUserSvc(t)

		assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1, 2), ErrForbidden)
	})

	t.Run("already deleted", func(t *testing.T) {
		svc, repo, _ := newTestUserSvc(t)

		repo.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(store.ErrUserNotFound)

		assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1, 1), store.ErrUserNotFound)
	})
}
