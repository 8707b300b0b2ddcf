package http

import (
	"net/http"

	"github.com/MKhiriev/go-novel-hub/models"
)

// getUser returns the public profile: id, username and email.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "getting user failed")
		return
	}

	writeOK(w, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	h.applyUserUpdate(w, r, id)
}

// updateProfile updates the user the token belongs to.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	h.applyUserUpdate(w, r, id)
}

func (h *Handler) applyUserUpdate(w http.ResponseWriter, r *http.Request, id int64) {
	caller, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "invalid profile body")
		return
	}
	update.ID = id

	if err = h.services.UserService.UpdateUser(r.Context(), caller, update); err != nil {
		writeError(w, r, err, "profile update failed")
		return
	}

	writeOK(w, models.MessageResponse{Msg: "Profile updated successfully"})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	h.removeUser(w, r, id)
}

// deleteSelf deletes the user the token belongs to.
func (h *Handler) deleteSelf(w http.ResponseWriter, r *http.Request) {
	id, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	h.removeUser(w, r, id)
}

func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request, id int64) {
	caller, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), caller, id); err != nil {
		writeError(w, r, err, "user deletion failed")
		return
	}

	writeOK(w, models.MessageResponse{Msg: "User deleted"})
}

func (h *Handler) listUserNovels(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	novels, err := h.services.NovelService.ListUserNovels(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "listing novels of user failed")
		return
	}

	writeOK(w, novels)
}

func (h *Handler) listUserWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	novels, err := h.services.SocialService.ListWishlist(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "listing wishlist failed")
		return
	}

	writeOK(w, novels)
}
