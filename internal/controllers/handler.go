// Package controllers holds the dashboard screens. Every read goes through
// the session's query scope; every API call carries the session's token.
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"commuta_admin/internal/api"
	"commuta_admin/internal/listview"
	"commuta_admin/internal/middleware"
	"commuta_admin/internal/query"
	"commuta_admin/internal/session"
	"commuta_admin/internal/views"
)

// loadingRefresh is how often a page still waiting on a fetch reloads itself.
const loadingRefresh = 2

// Deps are the collaborators shared by all screens.
type Deps struct {
	API    api.Config
	Store  session.Store
	Cache  *query.Cache
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

type Handler struct {
	api    api.Config
	store  session.Store
	cache  *query.Cache
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(d Deps) *Handler {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Handler{
		api:    d.API,
		store:  d.Store,
		cache:  d.Cache,
		secret: d.Secret,
		ttl:    d.TTL,
		now:    d.Now,
	}
}

// conn returns the API client and cache scope of the request's session.
// RequireSession must have run.
func (h *Handler) conn(c *gin.Context) (*api.Client, *query.Scope) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		sess = session.New(h.store, "")
	}
	return api.New(h.api, sess), h.cache.Scope(sess.ID())
}

// signOut forgets the session's token and cached reads and expires the cookie.
func (h *Handler) signOut(c *gin.Context) {
	if sess, ok := middleware.SessionFrom(c); ok {
		if err := api.New(h.api, sess).Logout(c.Request.Context()); err != nil {
			logrus.WithError(err).WithField("sid", sess.ID()).Error("failed to clear session")
		}
		h.cache.Scope(sess.ID()).Drop()
	}
	middleware.ClearSessionCookie(c)
}

// unauthorized sends the browser to /login when err means the token is
// missing or rejected. It reports whether it did.
func (h *Handler) unauthorized(c *gin.Context, err error) bool {
	if err == nil || !api.IsUnauthorized(err) {
		return false
	}
	logrus.WithField("path", c.Request.URL.Path).Info("session no longer authorized, signing out")
	h.signOut(c)
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
	return true
}

// render executes a page template after attaching the pending flash.
func (h *Handler) render(c *gin.Context, name string, page views.Page) {
	page.Flash = popFlash(c)
	c.HTML(http.StatusOK, name, page)
}

// notFound renders the error page when err is the API's 404. It reports
// whether it did.
func (h *Handler) notFound(c *gin.Context, err error) bool {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		return false
	}
	c.HTML(http.StatusNotFound, "error", views.Page{Title: "Not found", Error: apiErr.Message})
	return true
}

// listParams reads q, period and page. A missing or invalid page is 1.
func listParams(c *gin.Context) listview.Params {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return listview.Params{
		Query:  strings.TrimSpace(c.Query("q")),
		Window: listview.ParseWindow(c.Query("period")),
		Page:   page,
	}
}

const flashCookie = "toast"

// setFlash queues a one-shot message for the next rendered page. gin
// escapes cookie values, so the message may hold any text.
func setFlash(c *gin.Context, kind, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, kind+"|"+msg, 60, "/", "", c.Request.TLS != nil, true)
}

func popFlash(c *gin.Context) *views.Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", c.Request.TLS != nil, true)

	kind, msg, ok := strings.Cut(raw, "|")
	if !ok || msg == "" {
		return nil
	}
	return &views.Flash{Kind: kind, Message: msg}
}
