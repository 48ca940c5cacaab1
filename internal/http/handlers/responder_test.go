package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/testutil"
)

func TestWriteJSONSetsContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusCreated, map[string]string{"k": "v"}, nil)

	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected JSON content type, got %q", got)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
}

func TestWriteErrorIncludesRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "req-42")

	writeError(rr, req, http.StatusBadRequest, "bad input", nil)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "bad input" || body["request_id"] != "req-42" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestWriteErrorWithoutRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	writeError(rr, req, http.StatusInternalServerError, "boom", nil)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if _, present := body["request_id"]; present {
		t.Fatalf("expected no request_id, got %+v", body)
	}
}
