package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	db "fraudwatch-server/src/db/sql"
	"fraudwatch-server/src/logger"
	"fraudwatch-server/src/middleware"
	"fraudwatch-server/src/models"
	"fraudwatch-server/src/util"
)

const tokenLifetime = 12 * time.Hour

func Login(store AnalystStore, jwtSecret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var credentials struct {
			UsernameOrEmail string `json:"username"`
			Password        string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Warn().Err(err).Msg("failed to decode login request body")
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}

		login := strings.TrimSpace(credentials.UsernameOrEmail)
		analyst, err := store.GetAnalystByLogin(r.Context(), login)
		if errors.Is(err, db.ErrAnalystNotFound) {
			log.Warn().Str("login", login).Msg("login for unknown analyst")
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		if err != nil {
			writeError(w, r, err, "failed to look up analyst")
			return
		}

		if analyst.Locked {
			log.Warn().Str("username", analyst.Username).Msg("locked analyst attempted login")
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "account is locked"})
			return
		}

		if err := bcrypt.CompareHashAndPassword(analyst.PasswordHash, []byte(credentials.Password)); err != nil {
			log.Warn().Str("username", analyst.Username).Str("remote_addr", r.RemoteAddr).Msg("invalid password attempt")
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}

		tokenString, err := middleware.IssueToken(jwtSecret, analyst, time.Now().Add(tokenLifetime))
		if err != nil {
			writeError(w, r, err, "error generating token")
			return
		}

		if err := store.UpdateAnalystLastLogin(r.Context(), analyst.ID); err != nil {
			log.Error().Err(err).Int64("analyst_id", analyst.ID).Msg("failed to update last_login")
		}

		log.Info().Str("username", analyst.Username).Int64("analyst_id", analyst.ID).Msg("successful login")
		writeJSON(w, http.StatusOK, map[string]string{"token": tokenString})
	}
}

// CreateAnalyst registers a dashboard account. Only super admins reach it.
func CreateAnalyst(store AnalystStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req models.CreateAnalystRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn().Err(err).Msg("failed to decode create analyst request body")
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}
		req.Email = strings.TrimSpace(req.Email)
		req.Username = strings.TrimSpace(req.Username)

		if msg := util.ValidateAnalyst(req); msg != "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			writeError(w, r, err, "failed to hash password")
			return
		}

		analyst, err := store.CreateAnalyst(r.Context(), req, string(hashedPassword))
		if errors.Is(err, db.ErrAnalystExists) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		if err != nil {
			writeError(w, r, err, "failed to create analyst")
			return
		}

		log.Info().
			Str("username", analyst.Username).
			Int64("analyst_id", analyst.ID).
			Str("created_by", middleware.UsernameFromContext(r.Context())).
			Msg("analyst created")
		writeJSON(w, http.StatusCreated, analyst)
	}
}
