package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/http/requestutil"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/logging"
)

// RequireJWT guards a subtree with an HS256 bearer token check. An
// empty secret disables the check entirely, which keeps local runs
// usable without auth configuration.
func RequireJWT(secret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := requestutil.BearerToken(r)
			if !ok {
				denyAuth(w, r, logger, "missing bearer token")
				return
			}
			if err := verifyHS256(token, secret); err != nil {
				denyAuth(w, r, logger, "invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdminToken guards admin routes with a static token compared in
// constant time. An empty configured token rejects everything: admin
// routes are opt-in.
func RequireAdminToken(token string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented, ok := requestutil.BearerToken(r)
			if token == "" || !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				denyAuth(w, r, logger, "admin unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func verifyHS256(token, secret string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return fmt.Errorf("token invalid")
	}
	return nil
}

func denyAuth(w http.ResponseWriter, r *http.Request, logger *slog.Logger, reason string) {
	logging.Warn(logger, reason,
		slog.String(logging.FieldPath, r.URL.Path),
		slog.String("client_ip", requestutil.ClientIP(r)),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	body := map[string]string{"error": "unauthorized"}
	if reqID := RequestIDFromContext(r.Context()); reqID != "" {
		body["request_id"] = reqID
	}
	_ = json.NewEncoder(w).Encode(body)
}
