package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/store"
	"github.com/MKhiriev/go-novel-hub/models"
)

// socialService implements SocialService. The schema has no foreign keys,
// so the referenced novel is looked up before anything is attached to it.
type socialService struct {
	novelRepository    store.NovelRepository
	likeRepository     store.LikeRepository
	commentRepository  store.CommentRepository
	wishlistRepository store.WishlistRepository

	logger *logger.Logger
}

func NewSocialService(storages *store.Storages, logger *logger.Logger) SocialService {
	return &socialService{
		novelRepository:    storages.NovelRepository,
		likeRepository:     storages.LikeRepository,
		commentRepository:  storages.CommentRepository,
		wishlistRepository: storages.WishlistRepository,
		logger:             logger,
	}
}

// LikeNovel records a like. Repeated likes by the same user are all kept.
func (s *socialService) LikeNovel(ctx context.Context, like models.Like) (models.Like, error) {
	if err := s.ensureNovelExists(ctx, like.NovelID); err != nil {
		return models.Like{}, err
	}

	saved, err := s.likeRepository.SaveLike(ctx, like)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("novel_id", like.NovelID).Msg("saving like failed")
		return models.Like{}, fmt.Errorf("error saving like: %w", err)
	}

	return saved, nil
}

func (s *socialService) CountLikes(ctx context.Context, novelID int64) (int64, error) {
	count, err := s.likeRepository.CountLikes(ctx, novelID)
	if err != nil {
		return 0, fmt.Errorf("error counting likes: %w", err)
	}

	return count, nil
}

func (s *socialService) CommentNovel(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if err := s.ensureNovelExists(ctx, comment.NovelID); err != nil {
		return models.Comment{}, err
	}

	saved, err := s.commentRepository.SaveComment(ctx, comment)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("novel_id", comment.NovelID).Msg("saving comment failed")
		return models.Comment{}, fmt.Errorf("error saving comment: %w", err)
	}

	return saved, nil
}

func (s *socialService) ListComments(ctx context.Context, novelID int64) ([]models.Comment, error) {
	comments, err := s.commentRepository.ListComments(ctx, novelID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}

	return comments, nil
}

func (s *socialService) AddToWishlist(ctx context.Context, entry models.WishlistEntry) (models.WishlistEntry, error) {
	if err := s.ensureNovelExists(ctx, entry.NovelID); err != nil {
		return models.WishlistEntry{}, err
	}

	saved, err := s.wishlistRepository.SaveWishlistEntry(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("novel_id", entry.NovelID).Msg("saving wishlist entry failed")
		return models.WishlistEntry{}, fmt.Errorf("error saving wishlist entry: %w", err)
	}

	return saved, nil
}

func (s *socialService) ListWishlist(ctx context.Context, userID int64) ([]models.Novel, error) {
	novels, err := s.wishlistRepository.ListWishlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing wishlist: %w", err)
	}

	return novels, nil
}

// RemoveFromWishlist deletes the caller's own entry for novelID.
func (s *socialService) RemoveFromWishlist(ctx context.Context, novelID, userID int64) error {
	if err := s.wishlistRepository.DeleteWishlistEntry(ctx, novelID, userID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("novel_id", novelID).
			Int64("user_id", userID).
			Msg("removing wishlist entry failed")
		return fmt.Errorf("error removing wishlist entry: %w", err)
	}

	return nil
}

func (s *socialService) ensureNovelExists(ctx context.Context, novelID int64) error {
	if _, err := s.novelRepository.GetNovel(ctx, novelID); err != nil {
		return fmt.Errorf("error checking novel: %w", err)
	}

	return nil
}
