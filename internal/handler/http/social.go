package http

import (
	"net/http"

	"github.com/MKhiriev/go-novel-hub/models"
)

func (h *Handler) likeNovel(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var req models.LikeRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid like body")
		return
	}

	if _, err = h.services.SocialService.LikeNovel(r.Context(), models.Like{NovelID: req.NovelID, UserID: userID}); err != nil {
		writeError(w, r, err, "liking novel failed")
		return
	}

	writeOK(w, models.MessageResponse{Msg: "Liked the novel"})
}

func (h *Handler) countLikes(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid novel id")
		return
	}

	count, err := h.services.SocialService.CountLikes(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "counting likes failed")
		return
	}

	writeOK(w, models.LikesResponse{Likes: count})
}

func (h *Handler) commentNovel(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var req models.CommentRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid comment body")
		return
	}

	comment := models.Comment{NovelID: req.NovelID, UserID: userID, Text: req.Text}
	if _, err = h.services.SocialService.CommentNovel(r.Context(), comment); err != nil {
		writeError(w, r, err, "commenting novel failed")
		return
	}

	writeOK(w, models.MessageResponse{Msg: "Comment added"})
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid novel id")
		return
	}

	comments, err := h.services.SocialService.ListComments(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "listing comments failed")
		return
	}

	writeOK(w, comments)
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var req models.WishlistRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid wishlist body")
		return
	}

	entry := models.WishlistEntry{NovelID: req.NovelID, UserID: userID}
	if _, err = h.services.SocialService.AddToWishlist(r.Context(), entry); err != nil {
		writeError(w, r, err, "adding to wishlist failed")
		return
	}

	writeOK(w, models.MessageResponse{Msg: "Added to wishlist"})
}

// removeFromWishlist takes the novel id from the URL; only the caller's own
// entry can be removed.
func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	novelID, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid novel id")
		return
	}

	if err = h.services.SocialService.RemoveFromWishlist(r.Context(), novelID, userID); err != nil {
		writeError(w, r, err, "removing from wishlist failed")
		return
	}

	writeOK(w, models.MessageResponse{Msg: "Novel removed from wishlist"})
}
