package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(RequestID(), RequestLogger(logger), Recovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func TestRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(&buf)

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		id := w.Header().Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected uuid request id, got %q", id)
		}
		if w.Body.String() != id {
			t.Fatalf("handler saw %q, header %q", w.Body.String(), id)
		}
	})

	t.Run("propagates", func(t *testing.T) {
		inbound := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(HeaderRequestID, inbound)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(HeaderRequestID) != inbound {
			t.Fatalf("expected inbound id to be kept")
		}
	})

	t.Run("replaces garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(HeaderRequestID, "not-a-uuid\nInjected: 1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if _, err := uuid.Parse(w.Header().Get(HeaderRequestID)); err != nil {
			t.Fatalf("expected replacement uuid")
		}
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(&buf)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	if out := buf.String(); !strings.Contains(out, "level=INFO") || !strings.Contains(out, "path=/ok") || !strings.Contains(out, "status=200") {
		t.Fatalf("unexpected log: %q", out)
	}

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "status=404") {
		t.Fatalf("unexpected log: %q", out)
	}

	buf.Reset()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if out := buf.String(); !strings.Contains(out, "recovered from panic") || !strings.Contains(out, "level=ERROR") {
		t.Fatalf("unexpected log: %q", out)
	}
}
