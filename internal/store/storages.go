package store

import "github.com/MKhiriev/go-novel-hub/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	NovelRepository    NovelRepository
	LikeRepository     LikeRepository
	CommentRepository  CommentRepository
	WishlistRepository WishlistRepository
}

// NewStorages wires all SQL repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		NovelRepository:    NewNovelRepository(db, logger),
		LikeRepository:     NewLikeRepository(db, logger),
		CommentRepository:  NewCommentRepository(db, logger),
		WishlistRepository: NewWishlistRepository(db, logger),
	}
}
