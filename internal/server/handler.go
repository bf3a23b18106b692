// Package server implements the development auth server the login client
// talks to. It exposes a minimal REST surface: credential verification with
// JWT issuance and a token-protected session lookup. Accounts live in
// memory and are seeded at startup; there is no persistence.
package server

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-login-flow/internal/config"
	"github.com/MKhiriev/go-login-flow/internal/logger"
	"github.com/MKhiriev/go-login-flow/internal/utils"
	"github.com/MKhiriev/go-login-flow/models"
	"golang.org/x/crypto/bcrypt"
)

// userRecord pairs the public user data with its bcrypt password hash.
type userRecord struct {
	user         models.User
	passwordHash []byte
}

// Handler carries the dependencies of all HTTP handlers: the seeded account
// table, token settings and the root logger.
type Handler struct {
	cfg    *config.ServerConfig
	logger *logger.Logger
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	users map[string]userRecord
}

// NewHandler constructs a [Handler] with an empty account table.
func NewHandler(cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		users:  make(map[string]userRecord),
	}
}

// SeedUser registers an account in the in-memory table, hashing the password
// with bcrypt. Returns the created user record.
func (h *Handler) SeedUser(login, name, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash seed password: %w", err)
	}

	user := models.User{
		UserID: h.ids.Generate(),
		Login:  login,
		Name:   name,
	}

	h.mu.Lock()
	h.users[login] = userRecord{user: user, passwordHash: hash}
	h.mu.Unlock()

	return user, nil
}

// findUser looks up an account by login.
func (h *Handler) findUser(login string) (userRecord, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rec, ok := h.users[login]
	return rec, ok
}

// findUserByID looks up an account by user ID.
func (h *Handler) findUserByID(userID string) (userRecord, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, rec := range h.users {
		if rec.user.UserID == userID {
			return rec, true
		}
	}

	return userRecord{}, false
}
