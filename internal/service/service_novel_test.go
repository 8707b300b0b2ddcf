package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/mock"
	"github.com/MKhiriev/go-novel-hub/internal/store"
	"github.com/MKhiriev/go-novel-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNovelSvc(t *testing.T) (NovelService, *mock.MockNovelRepository) {
	t.Helper()
	repo := mock.NewMockNovelRepository(gomock.NewController(t))
	return NewNovelService(repo, logger.Nop()), repo
}

func TestNovelService_UploadAndGet(t *testing.T) {
	svc, repo := newTestNovelSvc(t)
	ctx := context.Background()

	novel := models.Novel{Title: "A", Description: "d", Content: "c", UserID: 1}
	stored := novel
	stored.ID = 10

	repo.EXPECT().CreateNovel(ctx, novel).Return(stored, nil)
	repo.EXPECT().GetNovel(ctx, int64(10)).Return(stored, nil)

	created, err := svc.UploadNovel(ctx, novel)
	require.NoError(t, err)

	got, err := svc.GetNovel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestNovelService_UploadNovel_ClientIDIgnored(t *testing.T) {
	svc, repo := newTestNovelSvc(t)

	repo.EXPECT().CreateNovel(gomock.Any(), models.Novel{Title: "A", UserID: 1}).
		Return(models.Novel{ID: 3, Title: "A", UserID: 1}, nil)

	_, err := svc.UploadNovel(context.Background(), models.Novel{ID: 99, Title: "A", UserID: 1})
	assert.NoError(t, err)
}

func TestNovelService_UploadNovel_NoOwner(t *testing.T) {
	svc, _ := newTestNovelSvc(t)

	_, err := svc.UploadNovel(context.Background(), models.Novel{Title: "A"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNovelService_Lists(t *testing.T) {
	svc, repo := newTestNovelSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListNovels(ctx).Return([]models.Novel{{ID: 1}, {ID: 2}}, nil)
	repo.EXPECT().ListNovelsByOwner(ctx, int64(2)).Return([]models.Novel{{ID: 2, UserID: 2}}, nil)
	repo.EXPECT().SearchNovels(ctx, "zzz").Return([]models.Novel{}, nil)

	all, err := svc.ListNovels(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	owned, err := svc.ListUserNovels(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	found, err := svc.SearchNovels(ctx, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestNovelService_UpdateNovel(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "owner"},
		{name: "not owner", repoErr: store.ErrNotNovelOwner},
		{name: "missing", repoErr: store.ErrNovelNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestNovelSvc(t)
			update := models.NovelUpdate{ID: 1, UserID: 2, Title: "B"}

			repo.EXPECT().UpdateNovel(gomock.Any(), update).Return(tt.repoErr)

			err := svc.UpdateNovel(context.Background(), update)
			if tt.repoErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.repoErr)
		})
	}
}

func TestNovelService_DeleteNovel(t *testing.T) {
	svc, repo := newTestNovelSvc(t)

	repo.EXPECT().DeleteNovel(gomock.Any(), int64(1), int64(2)).Return(store.ErrNotNovelOwner)

	assert.ErrorIs(t, svc.DeleteNovel(context.Background(), 1, 2), store.ErrNotNovelOwner)
}
