package store

import (
	"context"

	"github.com/MKhiriev/go-novel-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts a user whose PasswordHash is already set and returns
	// it with the assigned ID. Returns [ErrUserAlreadyExists] on a duplicate
	// username or email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	// UpdateUser writes the non-nil fields of update. A new password must
	// arrive in PasswordHash.
	UpdateUser(ctx context.Context, update models.UserUpdate) error
	// DeleteUser removes the user row. Owned content is kept.
	DeleteUser(ctx context.Context, id int64) error
}

// NovelRepository persists novels. Update and delete are scoped by owner.
type NovelRepository interface {
	CreateNovel(ctx context.Context, novel models.Novel) (models.Novel, error)
	GetNovel(ctx context.Context, id int64) (models.Novel, error)
	ListNovels(ctx context.Context) ([]models.Novel, error)
	ListNovelsByOwner(ctx context.Context, userID int64) ([]models.Novel, error)
	SearchNovels(ctx context.Context, title string) ([]models.Novel, error)
	UpdateNovel(ctx context.Context, update models.NovelUpdate) error
	DeleteNovel(ctx context.Context, id, userID int64) error
}

type LikeRepository interface {
	SaveLike(ctx context.Context, like models.Like) (models.Like, error)
	CountLikes(ctx context.Context, novelID int64) (int64, error)
}

type CommentRepository interface {
	SaveComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, novelID int64) ([]models.Comment, error)
}

type WishlistRepository interface {
	SaveWishlistEntry(ctx context.Context, entry models.WishlistEntry) (models.WishlistEntry, error)
	// ListWishlist returns the full rows of the novels wished by userID.
	ListWishlist(ctx context.Context, userID int64) ([]models.Novel, error)
	DeleteWishlistEntry(ctx context.Context, novelID, userID int64) error
}
