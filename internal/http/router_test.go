package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/app/advice"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/app/athletes"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/app/team"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/config"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/http/handlers"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/recommend"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/testutil"
)

const routerSecret = "router-test-secret"

func newTestRouter(t *testing.T, jwtSecret, adminToken string) nethttp.Handler {
	t.Helper()
	ms := testutil.NewStoreWithTeam("ath-001", "2026-03-05", 90)
	engine, err := recommend.NewEngine("")
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	logger, _ := testutil.NewBufferLogger()

	h := handlers.NewHandler(handlers.Deps{
		Athletes: athletes.NewService(ms),
		Team:     team.NewService(ms, nil),
		Advice:   advice.NewService(ms, engine),
		Logger:   logger,
	})
	auth := handlers.NewAuthHandler(config.AuthConfig{
		JWTSecret:     jwtSecret,
		DashboardUser: "coach",
		DashboardPass: "s3cret",
		TokenTTL:      time.Hour,
	}, logger)
	admin := handlers.NewAdminHandler(testutil.NewTempWriter(t, 30), nil, nil, logger)

	return NewRouter(RouterConfig{
		Handler:    h,
		Auth:       auth,
		Admin:      admin,
		JWTSecret:  jwtSecret,
		AdminToken: adminToken,
		Logger:     logger,
	})
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "coach",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestRouterPublicProbes(t *testing.T) {
	r := newTestRouter(t, routerSecret, "")

	rr := testutil.Serve(r, nethttp.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	rr = testutil.Serve(r, nethttp.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
}

func TestRouterRejectsUnauthenticatedAPI(t *testing.T) {
	r := newTestRouter(t, routerSecret, "")

	paths := []string{
		"/api/athletes",
		"/api/athletes/ath-001",
		"/api/athletes/ath-001/biometric-data",
		"/api/team/overview",
		"/api/team/alerts",
		"/api/environment/air-quality",
	}
	for _, p := range paths {
		rr := testutil.Serve(r, nethttp.MethodGet, p, nil)
		testutil.AssertStatus(t, rr, nethttp.StatusUnauthorized)
	}
}

func TestRouterAcceptsBearerToken(t *testing.T) {
	r := newTestRouter(t, routerSecret, "")
	token := signToken(t, routerSecret)

	paths := []string{
		"/api/athletes",
		"/api/athletes/ath-001",
		"/api/athletes/ath-001/biometric-data",
		"/api/athletes/ath-001/genetic-profile",
		"/api/athletes/ath-001/body-composition",
		"/api/athletes/ath-001/blood-results",
		"/api/athletes/ath-001/readiness",
		"/api/athletes/ath-001/recovery",
		"/api/athletes/ath-001/injury-risk",
		"/api/athletes/ath-001/sleep",
		"/api/athletes/ath-001/body-load",
		"/api/athletes/ath-001/predictions",
		"/api/athletes/ath-001/recommendations",
		"/api/team/overview",
	}
	for _, p := range paths {
		rr := testutil.ServeWithBearer(r, nethttp.MethodGet, p, token, nil)
		testutil.AssertStatus(t, rr, nethttp.StatusOK)
	}
}

func TestRouterEmptySecretDisablesAuth(t *testing.T) {
	r := newTestRouter(t, "", "")
	rr := testutil.Serve(r, nethttp.MethodGet, "/api/athletes", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
}

func TestRouterLoginIsPublic(t *testing.T) {
	r := newTestRouter(t, routerSecret, "")
	rr := testutil.Serve(r, nethttp.MethodPost, "/api/auth/login", nil)
	// No token required; malformed body is the client's problem.
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
}

func TestRouterAdminMountedOnlyWithToken(t *testing.T) {
	withToken := newTestRouter(t, routerSecret, "admin-token")

	rr := testutil.Serve(withToken, nethttp.MethodPost, "/admin/catalog/reload", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusUnauthorized)

	rr = testutil.ServeWithBearer(withToken, nethttp.MethodPost, "/admin/catalog/reload", "admin-token", nil)
	// Mounted and authorized; the stub fixture has no catalog wired.
	testutil.AssertStatus(t, rr, nethttp.StatusServiceUnavailable)

	withoutToken := newTestRouter(t, routerSecret, "")
	rr = testutil.Serve(withoutToken, nethttp.MethodPost, "/admin/catalog/reload", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}

func TestRouterNotFoundIsJSON(t *testing.T) {
	r := newTestRouter(t, routerSecret, "")
	rr := testutil.Serve(r, nethttp.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "not found" {
		t.Fatalf("expected JSON not-found body, got %+v", body)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	r := newTestRouter(t, routerSecret, "")
	rr := testutil.Serve(r, nethttp.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusMethodNotAllowed)
}

func TestRouterCORSPreflight(t *testing.T) {
	r := newTestRouter(t, routerSecret, "")
	req := httptest.NewRequest(nethttp.MethodOptions, "/api/athletes", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", nethttp.MethodGet)
	rr := testutil.ServeRequest(r, req)
	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected CORS headers on preflight response")
	}
}
