package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-novel-hub/internal/validators"
	"github.com/MKhiriev/go-novel-hub/models"
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// AuthValidationService checks registration and login input before it
// reaches the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewNovelHubValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, invalid(err)
	}

	return v.inner.RegisterUser(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, invalid(err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewNovelHubValidator(),
	}
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, callerID int64, update models.UserUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return invalid(err)
	}

	return v.inner.UpdateUser(ctx, callerID, update)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, callerID, id int64) error {
	return v.inner.DeleteUser(ctx, callerID, id)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

type NovelValidationService struct {
	inner     NovelService
	validator validators.Validator
}

func NewNovelValidationService() NovelServiceWrapper {
	return &NovelValidationService{
		validator: validators.NewNovelHubValidator(),
	}
}

func (v *NovelValidationService) UploadNovel(ctx context.Context, novel models.Novel) (models.Novel, error) {
	if err := v.validator.Validate(ctx, novel); err != nil {
		return models.Novel{}, invalid(err)
	}

	return v.inner.UploadNovel(ctx, novel)
}

func (v *NovelValidationService) GetNovel(ctx context.Context, id int64) (models.Novel, error) {
	return v.inner.GetNovel(ctx, id)
}

func (v *NovelValidationService) ListNovels(ctx context.Context) ([]models.Novel, error) {
	return v.inner.ListNovels(ctx)
}

func (v *NovelValidationService) ListUserNovels(ctx context.Context, userID int64) ([]models.Novel, error) {
	return v.inner.ListUserNovels(ctx, userID)
}

func (v *NovelValidationService) SearchNovels(ctx context.Context, title string) ([]models.Novel, error) {
	return v.inner.SearchNovels(ctx, title)
}

func (v *NovelValidationService) UpdateNovel(ctx context.Context, update models.NovelUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return invalid(err)
	}

	return v.inner.UpdateNovel(ctx, update)
}

func (v *NovelValidationService) DeleteNovel(ctx context.Context, id, userID int64) error {
	return v.inner.DeleteNovel(ctx, id, userID)
}

func (v *NovelValidationService) Wrap(inner NovelService) NovelService {
	v.inner = inner
	return v
}

// SocialValidationService rejects empty comments.
type SocialValidationService struct {
	inner     SocialService
	validator validators.Validator
}

func NewSocialValidationService() SocialServiceWrapper {
	return &SocialValidationService{
		validator: validators.NewNovelHubValidator(),
	}
}

func (v *SocialValidationService) LikeNovel(ctx context.Context, like models.Like) (models.Like, error) {
	return v.inner.LikeNovel(ctx, like)
}

func (v *SocialValidationService) CountLikes(ctx context.Context, novelID int64) (int64, error) {
	return v.inner.CountLikes(ctx, novelID)
}

func (v *SocialValidationService) CommentNovel(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if err := v.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, invalid(err)
	}

	return v.inner.CommentNovel(ctx, comment)
}

func (v *SocialValidationService) ListComments(ctx context.Context, novelID int64) ([]models.Comment, error) {
	return v.inner.ListComments(ctx, novelID)
}

func (v *SocialValidationService) AddToWishlist(ctx context.Context, entry models.WishlistEntry) (models.WishlistEntry, error) {
	return v.inner.AddToWishlist(ctx, entry)
}

func (v *SocialValidationService) ListWishlist(ctx context.Context, userID int64) ([]models.Novel, error) {
	return v.inner.ListWishlist(ctx, userID)
}

func (v *SocialValidationService) RemoveFromWishlist(ctx context.Context, novelID, userID int64) error {
	return v.inner.RemoveFromWishlist(ctx, novelID, userID)
}

func (v *SocialValidationService) Wrap(inner SocialService) SocialService {
	v.inner = inner
	return v
}
