package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-novel-hub/internal/service"
	"github.com/MKhiriev/go-novel-hub/internal/store"
	"github.com/MKhiriev/go-novel-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadNovel(t *testing.T) {
	var got models.Novel
	novels := &mockNovelService{
		uploadFn: func(_ context.Context, novel models.Novel) (models.Novel, error) {
			got = novel
			novel.ID = 10
			return novel, nil
		},
	}
	router := newTestRouter(&service.Services{NovelService: novels})

	t.Run("owner comes from token", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/novels/",
			`{"title":"T","description":"D","content":"C","user_id":99}`, "token-1")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(1), got.UserID)
		assert.Equal(t, "T", got.Title)

		var resp models.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(10), resp.NovelID)
		assert.Equal(t, "Novel uploaded successfully", resp.Msg)
	})

	t.Run("no token", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/novels/", `{"title":"T"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/novels/", `{"title":"T"}`, "forged")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/novels/", `{`, "token-1")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListAndSearchNovels(t *testing.T) {
	var gotTitle string
	novels := &mockNovelService{
		listFn: func(context.Context) ([]models.Novel, error) {
			return []models.Novel{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, nil
		},
		searchFn: func(_ context.Context, title string) ([]models.Novel, error) {
			gotTitle = title
			return []models.Novel{}, nil
		},
	}
	router := newTestRouter(&service.Services{NovelService: novels})

	rr := doRequest(t, router, http.MethodGet, "/novels/", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []models.Novel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	rr = doRequest(t, router, http.MethodGet, "/novels/search/?title=zzz", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "zzz", gotTitle)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestSearchNovels_TitleParameter(t *testing.T) {
	calls := 0
	novels := &mockNovelService{
		searchFn: func(_ context.Context, title string) ([]models.Novel, error) {
			calls++
			assert.Empty(t, title)
			return []models.Novel{{ID: 1, Title: "A"}}, nil
		},
	}
	router := newTestRouter(&service.Services{NovelService: novels})

	rr := doRequest(t, router, http.MethodGet, "/novels/search/", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrMissingSearchTitle.Error()+"\n", rr.Body.String())
	assert.Zero(t, calls)

	// present but empty matches every title
	rr = doRequest(t, router, http.MethodGet, "/novels/search/?title=", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, calls)
}

func TestListNovels_StoreError(t *testing.T) {
	novels := &mockNovelService{
		listFn: func(context.Context) ([]models.Novel, error) {
			return nil, store.ErrExecutingQuery
		},
	}
	router := newTestRouter(&service.Services{NovelService: novels})

	rr := doRequest(t, router, http.MethodGet, "/novels/", "", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetAndDownloadNovel(t *testing.T) {
	novels := &mockNovelService{
		getFn: func(_ context.Context, id int64) (models.Novel, error) {
			if id != 7 {
				return models.Novel{}, store.ErrNovelNotFound
			}
			return models.Novel{ID: 7, Title: "Seven", Content: "text", UserID: 1}, nil
		},
	}
	router := newTestRouter(&service.Services{NovelService: novels})

	rr := doRequest(t, router, http.MethodGet, "/novels/7/", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Disposition"))

	rr = doRequest(t, router, http.MethodGet, "/novels/7/download/", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="novel_7.json"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var novel models.Novel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &novel))
	assert.Equal(t, "text", novel.Content)

	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/novels/8/", "", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/novels/8/download/", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(t, router, http.MethodGet, "/novels/0/", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(t, router, http.MethodGet, "/novels/x/", "", "").Code)
}

func TestUpdateNovel(t *testing.T) {
	var got models.NovelUpdate
	novels := &mockNovelService{
		updateFn: func(_ context.Context, update models.NovelUpdate) error {
			got = update
			switch {
			case update.ID == 404:
				return store.ErrNovelNotFound
			case update.UserID != 1:
				return store.ErrNotNovelOwner
			}
			return nil
		},
	}
	router := newTestRouter(&service.Services{NovelService: novels})

	tests := []struct {
		name       string
		target     string
		body       string
		token      string
		wantStatus int
	}{
		{name: "owner", target: "/novels/5/", body: `{"title":"New"}`, token: "token-1", wantStatus: http.StatusOK},
		{name: "not owner", target: "/novels/5/", body: `{"title":"New"}`, token: "token-2", wantStatus: http.StatusForbidden},
		{name: "missing novel", target: "/novels/404/", body: `{"title":"New"}`, token: "token-1", wantStatus: http.StatusNotFound},
		{name: "no token", target: "/novels/5/", body: `{"title":"New"}`, wantStatus: http.StatusUnauthorized},
		{name: "bad id", target: "/novels/-1/", body: `{"title":"New"}`, token: "token-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodPut, tt.target, tt.body, tt.token)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}

	rr := doRequest(t, router, http.MethodPut, "/novels/5/", `{"title":"New","description":"d","content":"c"}`, "token-1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.NovelUpdate{ID: 5, UserID: 1, Title: "New", Description: "d", Content: "c"}, got)
}

func TestDeleteNovel(t *testing.T) {
	novels := &mockNovelService{
		deleteFn: func(_ context.Context, id, userID int64) error {
			if userID != 1 {
				return store.ErrNotNovelOwner
			}
			return nil
		},
	}
	router := newTestRouter(&service.Services{NovelService: novels})

	assert.Equal(t, http.StatusForbidden, doRequest(t, router, http.MethodDelete, "/novels/3/", "", "token-2").Code)

	rr := doRequest(t, router, http.MethodDelete, "/novels/3/", "", "token-1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Novel deleted successfully")
}
