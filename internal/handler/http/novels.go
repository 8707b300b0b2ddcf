// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-novel-hub/internal/utils"
	"github.com/MKhiriev/go-novel-hub/models"
)

func (h *Handler) uploadNovel(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var novel models.Novel
	if err = decodeJSON(r, &novel); err != nil {
		writeError(w, r, err, "invalid novel body")
		return
	}
	// the owner always comes from the token
	novel.UserID = userID

	created, err := h.services.NovelService.UploadNovel(r.Context(), novel)
	if err != nil {
		writeError(w, r, err, "novel upload failed")
		return
	}

	writeOK(w, models.MessageResponse{Msg: "Novel uploaded successfully", NovelID: created.ID})
}

func (h *Handler) listNovels(w http.ResponseWriter, r *http.Request) {
	novels, err := h.services.NovelService.ListNovels(r.Context())
	if err != nil {
		writeError(w, r, err, "listing novels failed")
		return
	}

	writeOK(w, novels)
}

func (h *Handler) searchNovels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("title") {
		writeError(w, r, ErrMissingSearchTitle, "search without title")
		return
	}
	title := query.Get("title")

	novels, err := h.services.NovelService.SearchNovels(r.Context(), title)
	if err != nil {
		writeError(w, r, err, "searching novels failed")
		return
	}

	writeOK(w, novels)
}

func (h *Handler) getNovel(w http.ResponseWriter, r *http.Request) {
	novel, ok := h.novelFromURL(w, r)
	if !ok {
		return
	}

	writeOK(w, novel)
}

// downloadNovel serves the novel as a JSON attachment.
func (h *Handler) downloadNovel(w http.ResponseWriter, r *http.Request) {
	novel, ok := h.novelFromURL(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="novel_%d.json"`, novel.ID))
	utils.WriteJSON(w, novel, http.StatusOK)
}

func (h *Handler) novelFromURL(w http.ResponseWriter, r *http.Request) (models.Novel, bool) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid novel id")
		return models.Novel{}, false
	}

	novel, err := h.services.NovelService.GetNovel(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "getting novel failed")
		return models.Novel{}, false
	}

	return novel, true
}

func (h *Handler) updateNovel(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid novel id")
		return
	}

	var update models.NovelUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "invalid novel body")
		return
	}
	update.ID = id
	update.UserID = userID

	if err = h.services.NovelService.UpdateNovel(r.Context(), update); err != nil {
		writeError(w, r, err, "novel update failed")
		return
	}

	writeOK(w, models.MessageResponse{Msg: "Novel updated successfully"})
}

func (h *Handler) deleteNovel(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid novel id")
		return
	}

	if err = h.services.NovelService.DeleteNovel(r.Context(), id, userID); err != nil {
		writeError(w, r, err, "novel deletion failed")
		return
	}

	writeOK(w, models.MessageResponse{Msg: "Novel deleted successfully"})
}
