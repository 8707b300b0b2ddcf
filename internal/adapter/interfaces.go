// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the command-line client uses
// to talk to the novel hub server.
//
// The primary abstraction is [NovelAPI], which decouples the client from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPNovelAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
//
// The API holds no session state: every authenticated call receives the
// bearer token explicitly.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-novel-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/novel_api_mock.go -package=mock

// NovelAPI defines communication with the novel hub server.
type NovelAPI interface {
	// Register creates an account and returns its id.
	Register(ctx context.Context, user models.User) (int64, error)

	// Login exchanges credentials for a signed token. The returned
	// [models.Token] carries the user id read from the token subject.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, token string, update models.UserUpdate) error
	DeleteUser(ctx context.Context, token string, id int64) error

	// UploadNovel publishes a novel owned by the token's user and returns its id.
	UploadNovel(ctx context.Context, token string, novel models.Novel) (int64, error)
	GetNovel(ctx context.Context, id int64) (models.Novel, error)
	ListNovels(ctx context.Context) ([]models.Novel, error)
	ListUserNovels(ctx context.Context, userID int64) ([]models.Novel, error)
	SearchNovels(ctx context.Context, title string) ([]models.Novel, error)

	// UpdateNovel replaces title, description and content. The server answers
	// with [ErrForbidden] when the token's user does not own the novel.
	UpdateNovel(ctx context.Context, token string, update models.NovelUpdate) error
	DeleteNovel(ctx context.Context, token string, id int64) error

	LikeNovel(ctx context.Context, token string, novelID int64) error
	CountLikes(ctx context.Context, novelID int64) (int64, error)
	CommentNovel(ctx context.Context, token string, novelID int64, text string) error
	ListComments(ctx context.Context, novelID int64) ([]models.Comment, error)

	AddToWishlist(ctx context.Context, token string, novelID int64) error
	RemoveFromWishlist(ctx context.Context, token string, novelID int64) error
	ListWishlist(ctx context.Context, userID int64) ([]models.Novel, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
