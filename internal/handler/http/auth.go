package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err, "invalid registration body")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	logger.FromRequest(r).Info().Int64("id", registeredUser.ID).Msg("user registered")

	writeOK(w, models.MessageResponse{Msg: "User created successfully", UserID: registeredUser.ID})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err, "invalid login body")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeOK(w, models.TokenResponse{Token: token.SignedString})
}
