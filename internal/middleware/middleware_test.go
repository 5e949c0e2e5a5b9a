package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/blanklearn/marketplace-backend/internal/metrics"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func errorCode(t *testing.T, body []byte) response.ErrCode {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Error == nil {
		return ""
	}
	return resp.Error.Code
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	r := gin.New()
	r.POST("/book", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	send := func(ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/book", nil)
		req.RemoteAddr = ip + ":40000"
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := send("10.0.0.1"); w.Code != http.StatusCreated {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}
	w := send("10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if code := errorCode(t, w.Body.Bytes()); code != response.ErrRateLimitExceeded {
		t.Errorf("unexpected code %s", code)
	}

	if w := send("10.0.0.2"); w.Code != http.StatusCreated {
		t.Errorf("other clients must keep their own budget, got %d", w.Code)
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	rl.Allow("a")
	rl.Allow("b")
	rl.visitors["a"].lastSeen = time.Now().Add(-time.Hour)

	rl.cleanup(time.Now())
	if _, ok := rl.visitors["a"]; ok {
		t.Error("stale visitor was not removed")
	}
	if _, ok := rl.visitors["b"]; !ok {
		t.Error("active visitor was removed")
	}
}

type fakeValidator struct {
	claims *service.Claims
	err    error
	token  string
}

func (f *fakeValidator) ValidateToken(tokenStr string) (*service.Claims, error) {
	f.token = tokenStr
	return f.claims, f.err
}

func TestRequireAdminJWT(t *testing.T) {
	admin := &service.Claims{TokenType: service.TokenTypeAdmin, UserID: 7}

	testCases := []struct {
		name      string
		header    string
		query     string
		validator *fakeValidator
		wantCode  int
		wantErr   response.ErrCode
	}{
		{"no token", "", "", &fakeValidator{claims: admin}, http.StatusUnauthorized, response.ErrTokenRequired},
		{"bad scheme", "Basic abc", "", &fakeValidator{claims: admin}, http.StatusUnauthorized, response.ErrTokenRequired},
		{"expired", "Bearer old", "", &fakeValidator{err: service.ErrTokenExpired}, http.StatusUnauthorized, response.ErrTokenExpired},
		{"invalid", "Bearer junk", "", &fakeValidator{err: errors.New("bad signature")}, http.StatusUnauthorized, response.ErrTokenInvalid},
		{"wrong audience", "Bearer x", "", &fakeValidator{claims: &service.Claims{TokenType: "student"}}, http.StatusForbidden, response.ErrAdminAccessOnly},
		{"header ok", "Bearer good", "", &fakeValidator{claims: admin}, http.StatusOK, ""},
		{"query ok", "", "good", &fakeValidator{claims: admin}, http.StatusOK, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin", RequireAdminJWT(tc.validator), func(c *gin.Context) {
				if GetClaims(c).UserID != 7 {
					t.Error("claims not stored in context")
				}
				c.Status(http.StatusOK)
			})

			target := "/admin"
			if tc.query != "" {
				target += "?token=" + tc.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantCode)
			}
			if tc.wantErr != "" {
				if code := errorCode(t, w.Body.Bytes()); code != tc.wantErr {
					t.Errorf("code = %s, want %s", code, tc.wantErr)
				}
			} else if tc.validator.token != "good" {
				t.Errorf("validator saw %q", tc.validator.token)
			}
		})
	}
}

func TestGetClaimsMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if GetClaims(c) != nil {
		t.Error("expected nil claims")
	}
}

func TestCacheControl(t *testing.T) {
	r := gin.New()
	h := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/facets", CacheControl(300), h)
	r.POST("/facets", CacheControl(300), h)
	r.GET("/admin", NoStore(), h)

	testCases := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/facets", "public, max-age=300"},
		{http.MethodPost, "/facets", ""},
		{http.MethodGet, "/admin", "no-store"},
	}
	for _, tc := range testCases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if got := w.Header().Get("Cache-Control"); got != tc.want {
			t.Errorf("%s %s: Cache-Control = %q, want %q", tc.method, tc.path, got, tc.want)
		}
	}
}

func TestBrotli(t *testing.T) {
	large := strings.Repeat("recommendation ", 200)

	r := gin.New()
	r.Use(Brotli())
	r.GET("/large", func(c *gin.Context) { c.String(http.StatusOK, large) })
	r.GET("/small", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	t.Run("compresses large bodies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/large", nil)
		req.Header.Set("Accept-Encoding", "gzip, br")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get("Content-Encoding") != "br" {
			t.Fatalf("expected br encoding, headers %v", w.Header())
		}
		plain, err := io.ReadAll(brotli.NewReader(bytes.NewReader(w.Body.Bytes())))
		if err != nil {
			t.Fatalf("decompress: %v", err)
		}
		if string(plain) != large {
			t.Error("round trip mismatch")
		}
	})

	t.Run("passes small bodies through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/small", nil)
		req.Header.Set("Accept-Encoding", "br")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get("Content-Encoding") != "" || w.Body.String() != "ok" {
			t.Errorf("unexpected response %q %v", w.Body.String(), w.Header())
		}
	})

	t.Run("respects missing accept-encoding", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/large", nil))
		if w.Header().Get("Content-Encoding") != "" || w.Body.String() != large {
			t.Error("response should be uncompressed")
		}
	})
}

func TestAcceptsBrotli(t *testing.T) {
	testCases := map[string]bool{
		"":             false,
		"gzip":         false,
		"br":           true,
		"gzip, BR":     true,
		"br;q=0.8":     true,
		"br;q=0, gzip": false,
		"brotli, gzip": false,
	}
	for header, want := range testCases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", header)
		if got := acceptsBrotli(req); got != want {
			t.Errorf("acceptsBrotli(%q) = %v, want %v", header, got, want)
		}
	}
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/courses/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/courses/:id", "200")
	unmatched := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before, beforeMiss := testutil.ToFloat64(counter), testutil.ToFloat64(unmatched)

	for _, path := range []string{"/courses/course-1", "/courses/course-2", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("route counter moved by %v, want 2", got)
	}
	if got := testutil.ToFloat64(unmatched) - beforeMiss; got != 1 {
		t.Errorf("unmatched counter moved by %v, want 1", got)
	}
}
