// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Novel is a piece of text content uploaded by a user.
// UserID is set at creation time and never changes afterwards.
type Novel struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`

	// UserID references the owner of the novel.
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Novel model.
func (n Novel) TableName() string {
	return "novels"
}

// NovelUpdate replaces the textual fields of a novel.
// The row is touched only when UserID matches the stored owner.
type NovelUpdate struct {
	ID     int64 `json:"-"`
	UserID int64 `json:"-"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Like records that a user liked a novel.
// The same user may like the same novel more than once.
type Like struct {
	ID      int64 `json:"id"`
	NovelID int64 `json:"novel_id"`
	UserID  int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "likes"
}

// Comment is an append-only remark left by a user on a novel.
type Comment struct {
	ID      int64  `json:"id"`
	NovelID int64  `json:"novel_id"`
	UserID  int64  `json:"user_id"`
	Text    string `json:"text"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// WishlistEntry marks a novel as wished by a user.
type WishlistEntry struct {
	ID      int64 `json:"id"`
	NovelID int64 `json:"novel_id"`
	UserID  int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the WishlistEntry model.
func (w WishlistEntry) TableName() string {
	return "wishlists"
}
