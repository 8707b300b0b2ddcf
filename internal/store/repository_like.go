package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/models"
)

type likeRepository struct {
	*DB
	logger *logger.Logger
}

func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	return &likeRepository{DB: db, logger: logger}
}

// SaveLike inserts a like. Repeated likes by the same user are stored as
// separate rows and all count.
func (l *likeRepository) SaveLike(ctx context.Context, like models.Like) (models.Like, error) {
	log := logger.FromContext(ctx)

	query, args, err := l.insertLikeQuery(like)
	if err != nil {
		return models.Like{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = l.QueryRowContext(ctx, query, args...).Scan(&like.ID); err != nil {
		log.Err(err).
			Str("func", "*likeRepository.SaveLike").
			Int64("novel_id", like.NovelID).
			Int64("user_id", like.UserID).
			Msg("failed to insert like")
		return models.Like{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return like, nil
}

func (l *likeRepository) CountLikes(ctx context.Context, novelID int64) (int64, error) {
	query, args, err := l.countLikesQuery(novelID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = l.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*likeRepository.CountLikes").
			Int64("novel_id", novelID).
			Msg("failed to count likes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
