package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/config"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/http/requestutil"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/logging"
)

// AuthHandler issues dashboard operator tokens.
type AuthHandler struct {
	cfg    config.AuthConfig
	logger *slog.Logger
	now    nowFunc
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, logger: logger, now: time.Now}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges the configured operator credentials for an HS256 JWT.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.cfg.JWTSecret == "" || h.cfg.DashboardUser == "" || h.cfg.DashboardPass == "" {
		writeError(w, r, http.StatusServiceUnavailable, "login not configured", h.logger)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid login payload", h.logger)
		return
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.DashboardUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.DashboardPass)) == 1
	if !userOK || !passOK {
		logging.Warn(h.logger, "login rejected",
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "invalid credentials", h.logger)
		return
	}

	issued := h.now().UTC()
	expires := issued.Add(h.cfg.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Username,
		"iat": issued.Unix(),
		"exp": expires.Unix(),
	})
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		logging.Error(h.logger, "token signing failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to issue token", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":      signed,
		"expires_at": expires.Format(time.RFC3339),
	}, h.logger)
}
