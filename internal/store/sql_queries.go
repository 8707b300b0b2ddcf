package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-novel-hub/models"
)

var (
	userColumns    = []string{"id", "username", "email", "password"}
	novelColumns   = []string{"id", "title", "description", "content", "user_id"}
	commentColumns = []string{"id", "novel_id", "user_id", "text"}
)

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("username", "email", "password").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) selectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

// updateUserQuery returns an UPDATE touching only the non-nil fields of update.
func (db *DB) updateUserQuery(update models.UserUpdate) (string, []any, error) {
	set := make(map[string]any, 3)
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		set["password"] = *update.PasswordHash
	}

	return db.builder.
		Update(models.User{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": update.ID}).
		ToSql()
}

func (db *DB) deleteUserQuery(id int64) (string, []any, error) {
	return db.builder.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) insertNovelQuery(novel models.Novel) (string, []any, error) {
	return db.builder.
		Insert(novel.TableName()).
		Columns("title", "description", "content", "user_id").
		Values(novel.Title, novel.Description, novel.Content, novel.UserID).
		Suffix("RETURNING id").
		ToSql()
}

// selectNovelsQuery lists novels ordered by id. A nil where selects all rows.
func (db *DB) selectNovelsQuery(where sq.Sqlizer) (string, []any, error) {
	query := db.builder.
		Select(novelColumns...).
		From(models.Novel{}.TableName()).
		OrderBy("id")
	if where != nil {
		query = query.Where(where)
	}

	return query.ToSql()
}

// searchNovelsQuery matches title as an unanchored substring.
func (db *DB) searchNovelsQuery(title string) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(title) + "%"
	return db.selectNovelsQuery(sq.Expr(`title LIKE ? ESCAPE '\'`, pattern))
}

func (db *DB) updateNovelQuery(update models.NovelUpdate) (string, []any, error) {
	return db.builder.
		Update(models.Novel{}.TableName()).
		Set("title", update.Title).
		Set("description", update.Description).
		Set("content", update.Content).
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		ToSql()
}

func (db *DB) deleteNovelQuery(id, userID int64) (string, []any, error) {
	return db.builder.
		Delete(models.Novel{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func (db *DB) novelExistsQuery(id int64) (string, []any, error) {
	return db.builder.
		Select("1").
		From(models.Novel{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) insertLikeQuery(like models.Like) (string, []any, error) {
	return db.builder.
		Insert(like.TableName()).
		Columns("novel_id", "user_id").
		Values(like.NovelID, like.UserID).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) countLikesQuery(novelID int64) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(models.Like{}.TableName()).
		Where(sq.Eq{"novel_id": novelID}).
		ToSql()
}

func (db *DB) insertCommentQuery(comment models.Comment) (string, []any, error) {
	return db.builder.
		Insert(comment.TableName()).
		Columns("novel_id", "user_id", "text").
		Values(comment.NovelID, comment.UserID, comment.Text).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) selectCommentsQuery(novelID int64) (string, []any, error) {
	return db.builder.
		Select(commentColumns...).
		From(models.Comment{}.TableName()).
		Where(sq.Eq{"novel_id": novelID}).
		OrderBy("id").
		ToSql()
}

func (db *DB) insertWishlistEntryQuery(entry models.WishlistEntry) (string, []any, error) {
	return db.builder.
		Insert(entry.TableName()).
		Columns("novel_id", "user_id").
		Values(entry.NovelID, entry.UserID).
		Suffix("RETURNING id").
		ToSql()
}

// selectWishlistQuery joins wishlists to novels. A novel wished twice is
// listed twice, once per entry.
func (db *DB) selectWishlistQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select("n.id", "n.title", "n.description", "n.content", "n.user_id").
		From(models.WishlistEntry{}.TableName() + " w").
		Join(models.Novel{}.TableName() + " n ON n.id = w.novel_id").
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("w.id").
		ToSql()
}

func (db *DB) deleteWishlistEntryQuery(novelID, userID int64) (string, []any, error) {
	return db.builder.
		Delete(models.WishlistEntry{}.TableName()).
		Where(sq.Eq{"novel_id": novelID, "user_id": userID}).
		ToSql()
}
