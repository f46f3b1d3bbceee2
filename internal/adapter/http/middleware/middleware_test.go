package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type who struct{ auth, admin bool }

func (w who) Authenticated() bool { return w.auth }
func (w who) IsAdmin() bool       { return w.admin }

func TestRedactJSON(t *testing.T) {
	out := redactJSON([]byte(`{"email":"a@b.ec","password":"x","nested":{"Token":"t","credential":"c"}}`))
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "a@b.ec", m["email"])
	assert.Equal(t, "***redacted***", m["password"])
	nested := m["nested"].(map[string]any)
	assert.Equal(t, "***redacted***", nested["Token"])
	assert.Equal(t, "***redacted***", nested["credential"])

	assert.Equal(t, []byte("plain"), redactJSON([]byte("plain")))
}

func TestLogging_HandlerSeesOriginalBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	r := gin.New()
	r.Use(Logging(slog.New(slog.NewJSONHandler(&logs, nil))))
	var seen string
	r.POST("/login", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		seen = string(b)
		c.JSON(200, gin.H{"ok": true})
	})

	body := `{"email":"a@b.ec","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, body, seen)
	assert.NotContains(t, logs.String(), "hunter22")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestAuthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		p      Principal
		admin  bool
		status int
	}{
		{"anonymous user route", nil, false, http.StatusUnauthorized},
		{"user route", who{auth: true}, false, http.StatusOK},
		{"user on admin route", who{auth: true}, true, http.StatusForbidden},
		{"admin route", who{auth: true, admin: true}, true, http.StatusOK},
		{"anonymous admin route", who{}, true, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAuthz(func(*gin.Context) Principal { return tc.p }, "/login")
			guard := a.RequireLogin()
			if tc.admin {
				guard = a.RequireAdmin()
			}
			r := gin.New()
			r.GET("/x", guard, func(c *gin.Context) { c.Status(http.StatusOK) })
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusUnauthorized {
				assert.Equal(t, "/login", w.Header().Get("Location"))
			}
		})
	}
}

func TestArea(t *testing.T) {
	cases := map[string]string{
		"/":                    "home",
		"/checkout/next":       "checkout",
		"/admin/productos/:id": "admin",
		"/carrito":             "carrito",
		"unmatched":            "unmatched",
	}
	for route, want := range cases {
		assert.Equal(t, want, Area(route), route)
	}
}

func TestMetricsSkipsHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics("/healthz"))
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/checkout", func(c *gin.Context) { c.Status(http.StatusConflict) })

	counted := viewRequests.WithLabelValues("checkout", http.MethodGet, "/checkout", "409")
	health := viewRequests.WithLabelValues("healthz", http.MethodGet, "/healthz", "200")
	before := testutil.ToFloat64(counted)

	for _, p := range []string{"/healthz", "/checkout"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, before+1, testutil.ToFloat64(counted))
	assert.Zero(t, testutil.ToFloat64(health))
	assert.Zero(t, testutil.ToFloat64(viewsInFlight))
}
