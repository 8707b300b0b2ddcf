// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/models"
)

// novelRepository is the SQL implementation of [NovelRepository].
//
// Update and delete put the caller's user id into the WHERE clause. When no
// row is affected the repository looks the novel up inside the same
// transaction to tell a missing novel ([ErrNovelNotFound]) from a novel owned
// by someone else ([ErrNotNovelOwner]).
type novelRepository struct {
	*DB
	logger *logger.Logger
}

func NewNovelRepository(db *DB, logger *logger.Logger) NovelRepository {
	return &novelRepository{
		DB:     db,
		logger: logger,
	}
}

func (n *novelRepository) CreateNovel(ctx context.Context, novel models.Novel) (models.Novel, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.insertNovelQuery(novel)
	if err != nil {
		log.Err(err).Str("func", "*novelRepository.CreateNovel").Msg("failed to build query")
		return models.Novel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = n.QueryRowContext(ctx, query, args...).Scan(&novel.ID); err != nil {
		log.Err(err).
			Str("func", "*novelRepository.CreateNovel").
			Int64("user_id", novel.UserID).
			Bool("retryable", n.retryable(err)).
			Msg("failed to insert novel")
		return models.Novel{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return novel, nil
}

func (n *novelRepository) GetNovel(ctx context.Context, id int64) (models.Novel, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.selectNovelsQuery(sq.Eq{"id": id})
	if err != nil {
		log.Err(err).Str("func", "*novelRepository.GetNovel").Msg("failed to build query")
		return models.Novel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var novel models.Novel
	err = n.QueryRowContext(ctx, query, args...).Scan(&novel.ID, &novel.Title, &novel.Description, &novel.Content, &novel.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Novel{}, ErrNovelNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*novelRepository.GetNovel").Int64("novel_id", id).Msg("failed to select novel")
		return models.Novel{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return novel, nil
}

func (n *novelRepository) ListNovels(ctx context.Context) ([]models.Novel, error) {
	query, args, err := n.selectNovelsQuery(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.queryNovels(ctx, "*novelRepository.ListNovels", query, args)
}

func (n *novelRepository) ListNovelsByOwner(ctx context.Context, userID int64) ([]models.Novel, error) {
	query, args, err := n.selectNovelsQuery(sq.Eq{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.queryNovels(ctx, "*novelRepository.ListNovelsByOwner", query, args)
}

// SearchNovels returns novels whose title contains title. Matching follows
// the engine's LIKE semantics: case-insensitive for ASCII on SQLite,
// case-sensitive on PostgreSQL.
func (n *novelRepository) SearchNovels(ctx context.Context, title string) ([]models.Novel, error) {
	query, args, err := n.searchNovelsQuery(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.queryNovels(ctx, "*novelRepository.SearchNovels", query, args)
}

func (n *novelRepository) queryNovels(ctx context.Context, funcName, query string, args []any) ([]models.Novel, error) {
	return scanNovels(ctx, n.DB, funcName, query, args)
}

// UpdateNovel replaces title, description and content of a novel owned by
// update.UserID.
func (n *novelRepository) UpdateNovel(ctx context.Context, update models.NovelUpdate) error {
	query, args, err := n.updateNovelQuery(update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.execOwned(ctx, "*novelRepository.UpdateNovel", update.ID, update.UserID, query, args)
}

// DeleteNovel removes a novel owned by userID. Likes, comments and wishlist
// entries referencing it are kept.
func (n *novelRepository) DeleteNovel(ctx context.Context, id, userID int64) error {
	query, args, err := n.deleteNovelQuery(id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.execOwned(ctx, "*novelRepository.DeleteNovel", id, userID, query, args)
}

// execOwned runs an owner-scoped statement and classifies a zero row count.
func (n *novelRepository) execOwned(ctx context.Context, funcName string, novelID, userID int64, query string, args []any) error {
	log := logger.FromContext(ctx).With().
		Str("func", funcName).
		Int64("novel_id", novelID).
		Int64("user_id", userID).
		Logger()

	tx, err := n.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Bool("retryable", n.retryable(err)).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := affectedRows(result)
	if err != nil {
		log.Err(err).Msg("failed to read affected rows")
		return err
	}

	if affected == 0 {
		existsQuery, existsArgs, err := n.novelExistsQuery(novelID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var one int
		err = tx.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&one)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrNovelNotFound
		case err != nil:
			log.Err(err).Msg("failed to check novel existence")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		log.Warn().Msg("attempt to modify a novel of another user")
		return ErrNotNovelOwner
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// scanNovels runs a query returning novel columns and scans every row.
// The result is never nil.
func scanNovels(ctx context.Context, db *DB, funcName, query string, args []any) ([]models.Novel, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	novels := make([]models.Novel, 0)
	for rows.Next() {
		var novel models.Novel
		if err = rows.Scan(&novel.ID, &novel.Title, &novel.Description, &novel.Content, &novel.UserID); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan novel row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		novels = append(novels, novel)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return novels, nil
}
