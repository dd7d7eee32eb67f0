package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"draft-companion/internal/metrics"
	"draft-companion/internal/testutil"
)

func TestLoggingMiddlewareAttachesRequestID(t *testing.T) {
	logger, buf := testutil.BufferLogger()

	var seenID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := LoggingMiddleware(logger, metrics.NewRecorder(), inner)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/draft", nil))

	if seenID == "" {
		t.Fatal("expected request id on context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seenID {
		t.Fatalf("expected header id %q to match context id %q", got, seenID)
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("expected completion log, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "status_code=204") {
		t.Fatalf("expected status code logged, got %s", buf.String())
	}
}

func TestLoggingMiddlewarePreservesIncomingRequestID(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := LoggingMiddleware(nil, nil, inner)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "given-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "given-id" {
		t.Fatalf("expected incoming id preserved, got %q", got)
	}
}
