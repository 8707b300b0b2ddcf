// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/store"
	"github.com/MKhiriev/go-novel-hub/models"
)

type novelService struct {
	novelRepository store.NovelRepository

	logger *logger.Logger
}

func NewNovelService(novelRepository store.NovelRepository, logger *logger.Logger) NovelService {
	return &novelService{
		novelRepository: novelRepository,
		logger:          logger,
	}
}

// UploadNovel stores a novel owned by novel.UserID.
func (s *novelService) UploadNovel(ctx context.Context, novel models.Novel) (models.Novel, error) {
	if novel.UserID <= 0 {
		return models.Novel{}, ErrInvalidDataProvided
	}
	novel.ID = 0

	created, err := s.novelRepository.CreateNovel(ctx, novel)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", novel.UserID).Msg("novel upload failed")
		return models.Novel{}, fmt.Errorf("error uploading novel: %w", err)
	}

	return created, nil
}

func (s *novelService) GetNovel(ctx context.Context, id int64) (models.Novel, error) {
	novel, err := s.novelRepository.GetNovel(ctx, id)
	if err != nil {
		return models.Novel{}, fmt.Errorf("error getting novel: %w", err)
	}

	return novel, nil
}

func (s *novelService) ListNovels(ctx context.Context) ([]models.Novel, error) {
	novels, err := s.novelRepository.ListNovels(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing novels: %w", err)
	}

	return novels, nil
}

func (s *novelService) ListUserNovels(ctx context.Context, userID int64) ([]models.Novel, error) {
	novels, err := s.novelRepository.ListNovelsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing novels of user: %w", err)
	}

	return novels, nil
}

// SearchNovels returns the novels whose title contains title. An empty
// result is an empty slice, not an error.
func (s *novelService) SearchNovels(ctx context.Context, title string) ([]models.Novel, error) {
	novels, err := s.novelRepository.SearchNovels(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("error searching novels: %w", err)
	}

	return novels, nil
}

// UpdateNovel replaces the text fields of a novel owned by update.UserID.
// Returns store.ErrNotNovelOwner or store.ErrNovelNotFound (wrapped) when
// nothing was changed.
func (s *novelService) UpdateNovel(ctx context.Context, update models.NovelUpdate) error {
	if err := s.novelRepository.UpdateNovel(ctx, update); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("id", update.ID).
			Int64("user_id", update.UserID).
			Msg("novel update failed")
		return fmt.Errorf("error updating novel: %w", err)
	}

	return nil
}

func (s *novelService) DeleteNovel(ctx context.Context, id, userID int64) error {
	if err := s.novelRepository.DeleteNovel(ctx, id, userID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("id", id).
			Int64("user_id", userID).
			Msg("novel deletion failed")
		return fmt.Errorf("error deleting novel: %w", err)
	}

	return nil
}
