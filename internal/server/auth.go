package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-login-flow/internal/logger"
	"github.com/MKhiriev/go-login-flow/internal/utils"
	"github.com/MKhiriev/go-login-flow/models"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		log.Warn().Msg("empty login or password")
		http.Error(w, "invalid data provided", http.StatusBadRequest)
		return
	}

	rec, ok := h.findUser(req.Username)
	if !ok {
		log.Warn().Str("login", req.Username).Msg("no user was found")
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(req.Password)); err != nil {
		log.Warn().Str("login", req.Username).Msg("wrong password")
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, rec.user.UserID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("user_id", rec.user.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.LoginResponse{User: rec.user}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// session returns the account of the authenticated caller. The auth
// middleware has already validated the bearer token and stored the user ID
// in the request context.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	rec, ok := h.findUserByID(userID)
	if !ok {
		log.Warn().Str("user_id", userID).Msg("token subject no longer exists")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if _, err := utils.WriteJSON(w, rec.user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing session response")
	}
}
