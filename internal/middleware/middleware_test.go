package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commuta_admin/internal/session"
)

var testSecret = []byte("test-secret")

func TestSessionToken_RoundTrip(t *testing.T) {
	tok, err := GenerateSessionToken(testSecret, "sid-1", time.Hour)
	require.NoError(t, err)

	sid, err := ValidateSessionToken(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sid)

	_, err = ValidateSessionToken([]byte("other"), tok)
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	tok, err := GenerateSessionToken(testSecret, "sid-1", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateSessionToken(testSecret, tok)
	assert.Error(t, err)
}

func newRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/riders", RequireSession(testSecret, store), func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, sess.ID())
	})
	return r
}

func TestRequireSession_RedirectsWithoutCookie(t *testing.T) {
	r := newRouter(session.NewMemoryStore(time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/riders", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSession_RedirectsWhenTokenCleared(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	tok, err := GenerateSessionToken(testSecret, "sid-2", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/riders", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tok})
	w := httptest.NewRecorder()
	newRouter(store).ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestRequireSession_PassesWithToken(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	require.NoError(t, store.Put(context.Background(), "sid-3", "api-token"))
	tok, err := GenerateSessionToken(testSecret, "sid-3", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/riders", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tok})
	w := httptest.NewRecorder()
	newRouter(store).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sid-3", w.Body.String())
}

func TestEnableCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := EnableCORS([]string{"https://admin.gocommuta.com"}, next)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://admin.gocommuta.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://admin.gocommuta.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
