package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/models"
)

type wishlistRepository struct {
	*DB
	logger *logger.Logger
}

func NewWishlistRepository(db *DB, logger *logger.Logger) WishlistRepository {
	return &wishlistRepository{DB: db, logger: logger}
}

func (w *wishlistRepository) SaveWishlistEntry(ctx context.Context, entry models.WishlistEntry) (models.WishlistEntry, error) {
	query, args, err := w.insertWishlistEntryQuery(entry)
	if err != nil {
		return models.WishlistEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = w.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*wishlistRepository.SaveWishlistEntry").
			Int64("novel_id", entry.NovelID).
			Int64("user_id", entry.UserID).
			Msg("failed to insert wishlist entry")
		return models.WishlistEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// ListWishlist returns the novels wished by userID. Entries pointing at a
// deleted novel are skipped by the join.
func (w *wishlistRepository) ListWishlist(ctx context.Context, userID int64) ([]models.Novel, error) {
	query, args, err := w.selectWishlistQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return scanNovels(ctx, w.DB, "*wishlistRepository.ListWishlist", query, args)
}

// DeleteWishlistEntry removes the caller's entries for novelID. Entries of
// other users are never matched by the predicate.
func (w *wishlistRepository) DeleteWishlistEntry(ctx context.Context, novelID, userID int64) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*wishlistRepository.DeleteWishlistEntry").
		Int64("novel_id", novelID).
		Int64("user_id", userID).
		Logger()

	query, args, err := w.deleteWishlistEntryQuery(novelID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := w.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to delete wishlist entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := affectedRows(result)
	if err != nil {
		log.Err(err).Msg("failed to read affected rows")
		return err
	}
	if affected == 0 {
		return ErrWishlistEntryNotFound
	}

	return nil
}
