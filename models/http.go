package models

// LikeRequest is the body of POST /novels/like/.
type LikeRequest struct {
	NovelID int64 `json:"novel_id"`
}

// CommentRequest is the body of POST /novels/comment/.
type CommentRequest struct {
	NovelID int64  `json:"novel_id"`
	Text    string `json:"text"`
}

// WishlistRequest is the body of POST /wishlist/.
type WishlistRequest struct {
	NovelID int64 `json:"novel_id"`
}
