package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"commuta_admin/internal/session"
)

// SessionCookie carries a signed JWT whose sid claim names the server-side
// session holding the admin API token.
const SessionCookie = "commuta_session"

// Context keys set by RequireSession.
const (
	KeySessionID = "sid"
	KeySession   = "session"
)

var errNoSID = errors.New("token has no sid claim")

// GenerateSessionToken signs a cookie value for sid valid for ttl.
func GenerateSessionToken(secret []byte, sid string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateSessionToken returns the sid of a valid, unexpired cookie value.
func ValidateSessionToken(secret []byte, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errNoSID
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errNoSID
	}
	return sid, nil
}

// SetSessionCookie stores the signed session token in an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
}

// RequireSession ensures the browser holds a valid session cookie and that
// the session still has an API token. Otherwise it redirects to /login.
func RequireSession(secret []byte, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		sid, err := ValidateSessionToken(secret, raw)
		if err != nil {
			logrus.WithError(err).Debug("rejecting session cookie")
			ClearSessionCookie(c)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		sess := session.New(store, sid)
		token, err := sess.Token(c.Request.Context())
		if err != nil {
			logrus.WithError(err).WithField("sid", sid).Error("failed to read session")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if token == "" {
			ClearSessionCookie(c)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(KeySessionID, sid)
		c.Set(KeySession, sess)
		c.Next()
	}
}

// SessionFrom returns the session RequireSession stored on c.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(KeySession)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
