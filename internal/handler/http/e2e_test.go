package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-novel-hub/internal/config"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/service"
	"github.com/MKhiriev/go-novel-hub/internal/store"
	"github.com/MKhiriev/go-novel-hub/models"
)

// newSQLiteRouter wires the real stack over a fresh SQLite file.
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()

	ctx := context.Background()
	log := logger.Nop()

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "e2e-sign-key",
			TokenIssuer:   "go-novel-hub",
			TokenDuration: time.Hour,
			Version:       "e2e",
		},
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "novels.db"),
		}},
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	services, err := service.NewServices(store.NewStorages(db, log), cfg, log)
	require.NoError(t, err)

	return NewHandler(services, 5*time.Second, log).Init()
}

func registerAndLogin(t *testing.T, router http.Handler, username string) (int64, string) {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"secret-%s"}`, username, username, username)
	rr := doRequest(t, router, http.MethodPost, "/users/", body, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var created models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	body = fmt.Sprintf(`{"username":%q,"password":"secret-%s"}`, username, username)
	rr = doRequest(t, router, http.MethodPost, "/login/", body, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var token models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &token))
	require.NotEmpty(t, token.Token)

	return created.UserID, token.Token
}

func TestEndToEnd_SQLite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping SQLite end-to-end test in short mode")
	}

	router := newSQLiteRouter(t)

	aliceID, aliceToken := registerAndLogin(t, router, "alice")
	bobID, bobToken := registerAndLogin(t, router, "bob")
	require.NotEqual(t, aliceID, bobID)

	// duplicate username
	rr := doRequest(t, router, http.MethodPost, "/users/", `{"username":"alice","email":"other@example.com","password":"x"}`, "")
	assert.Equal(t, http.StatusConflict, rr.Code)

	// wrong password
	rr = doRequest(t, router, http.MethodPost, "/login/", `{"username":"alice","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// alice uploads; user_id in the body is ignored
	rr = doRequest(t, router, http.MethodPost, "/novels/", fmt.Sprintf(
		`{"title":"Dune Road","description":"sand","content":"chapter one","user_id":%d}`, bobID), aliceToken)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var uploaded models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &uploaded))
	novelURL := fmt.Sprintf("/novels/%d/", uploaded.NovelID)

	getNovel := func() models.Novel {
		rr := doRequest(t, router, http.MethodGet, novelURL, "", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var n models.Novel
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &n))
		return n
	}
	assert.Equal(t, aliceID, getNovel().UserID)

	// bob cannot touch alice's novel
	rr = doRequest(t, router, http.MethodPut, novelURL, `{"title":"Stolen","description":"","content":""}`, bobToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Dune Road", getNovel().Title)

	rr = doRequest(t, router, http.MethodDelete, novelURL, "", bobToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// alice can, token passed as a query parameter
	rr = doRequest(t, router, http.MethodPut, novelURL+"?token="+aliceToken,
		`{"title":"Dune Road II","description":"more sand","content":"chapter two"}`, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Dune Road II", getNovel().Title)

	// social
	for range 2 {
		rr = doRequest(t, router, http.MethodPost, "/novels/like/", fmt.Sprintf(`{"novel_id":%d}`, uploaded.NovelID), bobToken)
		require.Equal(t, http.StatusOK, rr.Code)
	}
	rr = doRequest(t, router, http.MethodGet, novelURL+"likes/", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"likes":2}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodPost, "/novels/like/", `{"novel_id":9999}`, bobToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/novels/comment/",
		fmt.Sprintf(`{"novel_id":%d,"text":"great"}`, uploaded.NovelID), bobToken)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(t, router, http.MethodGet, novelURL+"comments/", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var comments []models.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, bobID, comments[0].UserID)

	rr = doRequest(t, router, http.MethodPost, "/wishlist/", fmt.Sprintf(`{"novel_id":%d}`, uploaded.NovelID), bobToken)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/users/%d/wishlist/", bobID), "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var wished []models.Novel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &wished))
	require.Len(t, wished, 1)
	assert.Equal(t, "Dune Road II", wished[0].Title)

	rr = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/wishlist/%d/", uploaded.NovelID), "", bobToken)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/wishlist/%d/", uploaded.NovelID), "", bobToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// search
	rr = doRequest(t, router, http.MethodGet, "/novels/search/?title=Road", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var found []models.Novel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &found))
	assert.Len(t, found, 1)

	rr = doRequest(t, router, http.MethodGet, "/novels/search/?title=zzz", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	// profile
	rr = doRequest(t, router, http.MethodPut, fmt.Sprintf("/users/%d/", aliceID), `{"email":"alice@new.example.com"}`, bobToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	rr = doRequest(t, router, http.MethodPut, "/users/profile/", `{"email":"alice@new.example.com"}`, aliceToken)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/users/%d/", aliceID), "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alice@new.example.com")

	// alice deletes her novel and then her account
	rr = doRequest(t, router, http.MethodDelete, novelURL, "", aliceToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, novelURL, "", "").Code)

	rr = doRequest(t, router, http.MethodDelete, "/users/", "", aliceToken)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(t, router, http.MethodPost, "/login/", `{"username":"alice","password":"secret-alice"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestEndToEnd_SQLiteRegistrationAndTokens(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping SQLite end-to-end test in short mode")
	}

	t.Run("concurrent identical registrations create one user", func(t *testing.T) {
		router := newSQLiteRouter(t)
		const attempts = 8
		body := `{"username":"carol","email":"carol@example.com","password":"secret-carol"}`

		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = doRequest(t, router, http.MethodPost, "/users/", body, "").Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusOK:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		assert.Equal(t, 1, created, "codes: %v", codes)
		assert.Equal(t, attempts-1, conflicts, "codes: %v", codes)

		rr := doRequest(t, router, http.MethodPost, "/login/", `{"username":"carol","password":"secret-carol"}`, "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("token stays valid after a password change", func(t *testing.T) {
		router := newSQLiteRouter(t)
		daveID, daveToken := registerAndLogin(t, router, "dave")

		rr := doRequest(t, router, http.MethodPut, fmt.Sprintf("/users/%d/", daveID), `{"password":"rotated"}`, daveToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = doRequest(t, router, http.MethodPost, "/login/", `{"username":"dave","password":"secret-dave"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		rr = doRequest(t, router, http.MethodPost, "/novels/", `{"title":"After Rotation","content":"text"}`, daveToken)
		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})

	t.Run("token stays valid after account deletion", func(t *testing.T) {
		router := newSQLiteRouter(t)
		erinID, erinToken := registerAndLogin(t, router, "erin")

		rr := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/users/%d/", erinID), "", erinToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = doRequest(t, router, http.MethodPost, "/novels/", `{"title":"Posthumous","content":"text"}`, erinToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var uploaded models.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &uploaded))
		rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/novels/%d/", uploaded.NovelID), "", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var novel models.Novel
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &novel))
		assert.Equal(t, erinID, novel.UserID)
	})
}
