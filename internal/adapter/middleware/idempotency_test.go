package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func newTestApp(t *testing.T) (*echo.Echo, *int) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	// Mirrors the server wiring: the middleware sits on mutating routes
	// only, the preview route stays unguarded.
	hits := 0
	e := echo.New()
	idm := Idempotency(rdb, 5*time.Minute)
	e.POST("/loans", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusCreated, map[string]any{"hit": hits})
	}, idm)
	e.GET("/loans", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusOK, map[string]any{"hit": hits})
	}, idm)
	e.POST("/loans/preview", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusOK, map[string]any{"hit": hits})
	})
	return e, &hits
}

func doPost(e *echo.Echo, reqID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if reqID != "" {
		req.Header.Set("X-Request-Id", reqID)
	}
	req.Header.Set("X-Request-At", strconv.FormatInt(time.Now().Unix(), 10))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_MissingRequestID(t *testing.T) {
	e, hits := newTestApp(t)
	rec := doPost(e, "", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if *hits != 0 {
		t.Fatalf("handler ran %d times, want 0", *hits)
	}
}

func TestIdempotency_SkippedForReads(t *testing.T) {
	e, hits := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/loans", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || *hits != 1 {
		t.Fatalf("GET: status=%d hits=%d", rec.Code, *hits)
	}
}

func TestIdempotency_PreviewRouteStaysOpen(t *testing.T) {
	e, hits := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/loans/preview", strings.NewReader(`{"amount":"5 000 000"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preview without idempotency headers: status = %d, want 200", rec.Code)
	}
	if *hits != 1 {
		t.Fatalf("handler ran %d times, want 1", *hits)
	}
}

func TestIdempotency_ReplaysRecordedResponse(t *testing.T) {
	e, hits := newTestApp(t)
	reqID := strings.Repeat("a", 32)

	first := doPost(e, reqID, `{"amount":"100"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first: status = %d", first.Code)
	}
	second := doPost(e, reqID, `{"amount":"100"}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay: status = %d", second.Code)
	}
	if *hits != 1 {
		t.Fatalf("handler ran %d times, want 1", *hits)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replayed body differs: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_ConflictOnDifferentBody(t *testing.T) {
	e, hits := newTestApp(t)
	reqID := strings.Repeat("b", 32)

	if rec := doPost(e, reqID, `{"amount":"100"}`); rec.Code != http.StatusCreated {
		t.Fatalf("first: status = %d", rec.Code)
	}
	rec := doPost(e, reqID, `{"amount":"999"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("different body: status = %d, want 409", rec.Code)
	}
	if *hits != 1 {
		t.Fatalf("handler ran %d times, want 1", *hits)
	}
}

func TestIdempotency_DistinctRequestIDsRunIndependently(t *testing.T) {
	e, hits := newTestApp(t)
	for i := 0; i < 3; i++ {
		reqID := strings.Repeat(fmt.Sprintf("%d", i+1), 32)
		if rec := doPost(e, reqID, `{}`); rec.Code != http.StatusCreated {
			t.Fatalf("req %d: status = %d", i, rec.Code)
		}
	}
	if *hits != 3 {
		t.Fatalf("handler ran %d times, want 3", *hits)
	}
}
