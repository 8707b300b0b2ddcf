package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/models"
)

type commentRepository struct {
	*DB
	logger *logger.Logger
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	return &commentRepository{DB: db, logger: logger}
}

func (c *commentRepository) SaveComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	query, args, err := c.insertCommentQuery(comment)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.QueryRowContext(ctx, query, args...).Scan(&comment.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*commentRepository.SaveComment").
			Int64("novel_id", comment.NovelID).
			Int64("user_id", comment.UserID).
			Msg("failed to insert comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return comment, nil
}

// ListComments returns the comments of a novel in insertion order.
func (c *commentRepository) ListComments(ctx context.Context, novelID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*commentRepository.ListComments").
		Int64("novel_id", novelID).
		Logger()

	query, args, err := c.selectCommentsQuery(novelID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err = rows.Scan(&comment.ID, &comment.NovelID, &comment.UserID, &comment.Text); err != nil {
			log.Err(err).Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}
