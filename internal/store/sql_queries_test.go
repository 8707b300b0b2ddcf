package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postgresBuilderDB() *DB {
	return newDB(nil, DialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop())
}

func sqliteBuilderDB() *DB {
	return newDB(nil, DialectSQLite, sq.Question, NewSQLiteErrorClassifier(), logger.Nop())
}

func strPtr(s string) *string { return &s }

func TestInsertUserQuery(t *testing.T) {
	user := models.User{Username: "alice", Email: "alice@x.com", PasswordHash: "digest"}

	query, args, err := postgresBuilderDB().insertUserQuery(user)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (username,email,password) VALUES ($1,$2,$3) RETURNING id", query)
	assert.Equal(t, []any{"alice", "alice@x.com", "digest"}, args)

	query, _, err = sqliteBuilderDB().insertUserQuery(user)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (username,email,password) VALUES (?,?,?) RETURNING id", query)
}

func TestSelectUserQuery(t *testing.T) {
	query, args, err := postgresBuilderDB().selectUserQuery(sq.Eq{"username": "alice"})

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, username, email, password FROM users WHERE username = $1", query)
	assert.Equal(t, []any{"alice"}, args)
}

func TestUpdateUserQuery(t *testing.T) {
	tests := []struct {
		name      string
		update    models.UserUpdate
		wantQuery string
		wantArgs  []any
		wantErr   bool
	}{
		{
			name:      "single field",
			update:    models.UserUpdate{ID: 7, Email: strPtr("new@x.com")},
			wantQuery: "UPDATE users SET email = $1 WHERE id = $2",
			wantArgs:  []any{"new@x.com", int64(7)},
		},
		{
			name: "all fields sorted by column",
			update: models.UserUpdate{
				ID:           7,
				Username:     strPtr("bob"),
				Email:        strPtr("bob@x.com"),
				Password:     strPtr("plaintext-is-ignored"),
				PasswordHash: strPtr("digest"),
			},
			wantQuery: "UPDATE users SET email = $1, password = $2, username = $3 WHERE id = $4",
			wantArgs:  []any{"bob@x.com", "digest", "bob", int64(7)},
		},
		{
			name:    "nothing to update",
			update:  models.UserUpdate{ID: 7},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := postgresBuilderDB().updateUserQuery(tt.update)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestNovelQueries(t *testing.T) {
	db := postgresBuilderDB()

	t.Run("insert", func(t *testing.T) {
		query, args, err := db.insertNovelQuery(models.Novel{Title: "A", Description: "d", Content: "c", UserID: 1})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO novels (title,description,content,user_id) VALUES ($1,$2,$3,$4) RETURNING id", query)
		assert.Equal(t, []any{"A", "d", "c", int64(1)}, args)
	})

	t.Run("list all", func(t *testing.T) {
		query, args, err := db.selectNovelsQuery(nil)
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, title, description, content, user_id FROM novels ORDER BY id", query)
		assert.Empty(t, args)
	})

	t.Run("list by owner", func(t *testing.T) {
		query, args, err := db.selectNovelsQuery(sq.Eq{"user_id": int64(3)})
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, title, description, content, user_id FROM novels WHERE user_id = $1 ORDER BY id", query)
		assert.Equal(t, []any{int64(3)}, args)
	})

	t.Run("update is owner scoped", func(t *testing.T) {
		query, args, err := db.updateNovelQuery(models.NovelUpdate{ID: 5, UserID: 2, Title: "B", Description: "d2", Content: "c2"})
		require.NoError(t, err)
		assert.Equal(t, "UPDATE novels SET title = $1, description = $2, content = $3 WHERE id = $4 AND user_id = $5", query)
		assert.Equal(t, []any{"B", "d2", "c2", int64(5), int64(2)}, args)
	})

	t.Run("delete is owner scoped", func(t *testing.T) {
		query, args, err := db.deleteNovelQuery(5, 2)
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM novels WHERE id = $1 AND user_id = $2", query)
		assert.Equal(t, []any{int64(5), int64(2)}, args)
	})
}

func TestSearchNovelsQuery(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		wantPattern string
	}{
		{name: "plain", title: "Dune", wantPattern: "%Dune%"},
		{name: "empty matches everything", title: "", wantPattern: "%%"},
		{name: "percent is literal", title: "100%", wantPattern: `%100\%%`},
		{name: "underscore is literal", title: "a_b", wantPattern: `%a\_b%`},
		{name: "backslash is literal", title: `a\b`, wantPattern: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := sqliteBuilderDB().searchNovelsQuery(tt.title)
			require.NoError(t, err)
			assert.Equal(t, `SELECT id, title, description, content, user_id FROM novels WHERE title LIKE ? ESCAPE '\' ORDER BY id`, query)
			assert.Equal(t, []any{tt.wantPattern}, args)
		})
	}
}

func TestSocialQueries(t *testing.T) {
	db := postgresBuilderDB()

	query, args, err := db.countLikesQuery(4)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM likes WHERE novel_id = $1", query)
	assert.Equal(t, []any{int64(4)}, args)

	query, args, err = db.insertCommentQuery(models.Comment{NovelID: 4, UserID: 1, Text: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO comments (novel_id,user_id,text) VALUES ($1,$2,$3) RETURNING id", query)
	assert.Equal(t, []any{int64(4), int64(1), "nice"}, args)

	query, args, err = db.selectWishlistQuery(1)
	require.NoError(t, err)
	assert.Equal(t, "SELECT n.id, n.title, n.description, n.content, n.user_id FROM wishlists w JOIN novels n ON n.id = w.novel_id WHERE w.user_id = $1 ORDER BY w.id", query)
	assert.Equal(t, []any{int64(1)}, args)

	query, args, err = db.deleteWishlistEntryQuery(4, 1)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM wishlists WHERE novel_id = $1 AND user_id = $2", query)
	assert.Equal(t, []any{int64(4), int64(1)}, args)
}
