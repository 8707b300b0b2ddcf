package models

// MessageResponse is the generic acknowledgement returned by mutating
// endpoints.
type MessageResponse struct {
	// Msg is a human-readable outcome description.
	Msg string `json:"msg"`

	// UserID is set by the registration endpoint.
	UserID int64 `json:"user_id,omitempty"`

	// NovelID is set by the novel upload endpoint.
	NovelID int64 `json:"novel_id,omitempty"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// LikesResponse carries the number of likes of a single novel.
type LikesResponse struct {
	Likes int64 `json:"likes"`
}
