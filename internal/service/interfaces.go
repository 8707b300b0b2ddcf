package service

import (
	"context"

	"github.com/MKhiriev/go-novel-hub/models"
)

// AuthService registers users, checks credentials and manages tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages user profiles. Mutations are allowed only when
// callerID is the affected user.
type UserService interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, callerID int64, update models.UserUpdate) error
	DeleteUser(ctx context.Context, callerID, id int64) error
}

type NovelService interface {
	UploadNovel(ctx context.Context, novel models.Novel) (models.Novel, error)
	GetNovel(ctx context.Context, id int64) (models.Novel, error)
	ListNovels(ctx context.Context) ([]models.Novel, error)
	ListUserNovels(ctx context.Context, userID int64) ([]models.Novel, error)
	SearchNovels(ctx context.Context, title string) ([]models.Novel, error)
	UpdateNovel(ctx context.Context, update models.NovelUpdate) error
	DeleteNovel(ctx context.Context, id, userID int64) error
}

// SocialService covers likes, comments and wishlists.
type SocialService interface {
	LikeNovel(ctx context.Context, like models.Like) (models.Like, error)
	CountLikes(ctx context.Context, novelID int64) (int64, error)

	CommentNovel(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, novelID int64) ([]models.Comment, error)

	AddToWishlist(ctx context.Context, entry models.WishlistEntry) (models.WishlistEntry, error)
	ListWishlist(ctx context.Context, userID int64) ([]models.Novel, error)
	RemoveFromWishlist(ctx context.Context, novelID, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService with additional behavior such
// as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type NovelServiceWrapper interface {
	Wrap(NovelService) NovelService
}

type SocialServiceWrapper interface {
	Wrap(SocialService) SocialService
}
