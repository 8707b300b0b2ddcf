package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-novel-hub/internal/config"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/utils"
	"github.com/MKhiriev/go-novel-hub/models"
)

type httpNovelAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNovelAPI constructs an HTTP/REST implementation of [NovelAPI].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns [ErrInvalidAddress] (wrapped) if the address is empty or cannot be
// parsed as a URL with scheme and host.
func NewHTTPNovelAPI(cfg config.ClientAdapter, logger *logger.Logger) (NovelAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpNovelAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNovelAPI) Register(ctx context.Context, user models.User) (int64, error) {
	var created models.MessageResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/users/")
	if err = h.decode(resp, err, "register", &created); err != nil {
		return 0, err
	}

	return created.UserID, nil
}

// Login posts the credentials to POST /login/. The token is taken from the
// response body; the Authorization header carries the same value.
func (h *httpNovelAPI) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	var tokenResponse models.TokenResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/login/")
	if err = h.decode(resp, err, "login", &tokenResponse); err != nil {
		return models.Token{}, err
	}

	userID, err := utils.ParseUserIDFromJWT(tokenResponse.Token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	return models.Token{SignedString: tokenResponse.Token, UserID: userID}, nil
}

func (h *httpNovelAPI) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	resp, err := h.client.R().
		SetContext(ctx).
		Get(userPath(id))
	if err = h.decode(resp, err, "get user", &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpNovelAPI) UpdateUser(ctx context.Context, token string, update models.UserUpdate) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(update).
		Put(userPath(update.ID))

	return h.check(resp, err, "update user")
}

func (h *httpNovelAPI) DeleteUser(ctx context.Context, token string, id int64) error {
	resp, err := h.authedRequest(ctx, token).Delete(userPath(id))

	return h.check(resp, err, "delete user")
}

func (h *httpNovelAPI) UploadNovel(ctx context.Context, token string, novel models.Novel) (int64, error) {
	var created models.MessageResponse
	resp, err := h.authedRequest(ctx, token).
		SetBody(novel).
		Post("/novels/")
	if err = h.decode(resp, err, "upload novel", &created); err != nil {
		return 0, err
	}

	return created.NovelID, nil
}

func (h *httpNovelAPI) GetNovel(ctx context.Context, id int64) (models.Novel, error) {
	var novel models.Novel
	resp, err := h.client.R().
		SetContext(ctx).
		Get(novelPath(id))
	if err = h.decode(resp, err, "get novel", &novel); err != nil {
		return models.Novel{}, err
	}

	return novel, nil
}

func (h *httpNovelAPI) ListNovels(ctx context.Context) ([]models.Novel, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/novels/")

	return h.novels(resp, err, "list novels")
}

func (h *httpNovelAPI) ListUserNovels(ctx context.Context, userID int64) ([]models.Novel, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(userPath(userID) + "novels/")

	return h.novels(resp, err, "list user novels")
}

func (h *httpNovelAPI) SearchNovels(ctx context.Context, title string) ([]models.Novel, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("title", title).
		Get("/novels/search/")

	return h.novels(resp, err, "search novels")
}

func (h *httpNovelAPI) UpdateNovel(ctx context.Context, token string, update models.NovelUpdate) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(update).
		Put(novelPath(update.ID))

	return h.check(resp, err, "update novel")
}

func (h *httpNovelAPI) DeleteNovel(ctx context.Context, token string, id int64) error {
	resp, err := h.authedRequest(ctx, token).Delete(novelPath(id))

	return h.check(resp, err, "delete novel")
}

func (h *httpNovelAPI) LikeNovel(ctx context.Context, token string, novelID int64) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(models.LikeRequest{NovelID: novelID}).
		Post("/novels/like/")

	return h.check(resp, err, "like novel")
}

func (h *httpNovelAPI) CountLikes(ctx context.Context, novelID int64) (int64, error) {
	var likes models.LikesResponse
	resp, err := h.client.R().
		SetContext(ctx).
		Get(novelPath(novelID) + "likes/")
	if err = h.decode(resp, err, "count likes", &likes); err != nil {
		return 0, err
	}

	return likes.Likes, nil
}

func (h *httpNovelAPI) CommentNovel(ctx context.Context, token string, novelID int64, text string) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(models.CommentRequest{NovelID: novelID, Text: text}).
		Post("/novels/comment/")

	return h.check(resp, err, "comment novel")
}

func (h *httpNovelAPI) ListComments(ctx context.Context, novelID int64) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	resp, err := h.client.R().
		SetContext(ctx).
		Get(novelPath(novelID) + "comments/")
	if err = h.decode(resp, err, "list comments", &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

func (h *httpNovelAPI) AddToWishlist(ctx context.Context, token string, novelID int64) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(models.WishlistRequest{NovelID: novelID}).
		Post("/wishlist/")

	return h.check(resp, err, "add to wishlist")
}

func (h *httpNovelAPI) RemoveFromWishlist(ctx context.Context, token string, novelID int64) error {
	resp, err := h.authedRequest(ctx, token).
		Delete("/wishlist/" + strconv.FormatInt(novelID, 10) + "/")

	return h.check(resp, err, "remove from wishlist")
}

func (h *httpNovelAPI) ListWishlist(ctx context.Context, userID int64) ([]models.Novel, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(userPath(userID) + "wishlist/")

	return h.novels(resp, err, "list wishlist")
}

func (h *httpNovelAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err = h.check(resp, err, "get version"); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpNovelAPI) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// check folds the transport error and the HTTP status into one error.
func (h *httpNovelAPI) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		h.logger.Debug().Err(err).Str("op", op).Msg("request failed")
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("server rejected request")
		return err
	}

	return nil
}

func (h *httpNovelAPI) decode(resp *resty.Response, err error, op string, v any) error {
	if err = h.check(resp, err, op); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	return nil
}

// novels decodes a list answer; the result is never nil on success.
func (h *httpNovelAPI) novels(resp *resty.Response, err error, op string) ([]models.Novel, error) {
	novels := make([]models.Novel, 0)
	if err = h.decode(resp, err, op, &novels); err != nil {
		return nil, err
	}

	return novels, nil
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10) + "/"
}

func novelPath(id int64) string {
	return "/novels/" + strconv.FormatInt(id, 10) + "/"
}
