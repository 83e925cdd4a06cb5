package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"

	"commuta_admin/internal/api"
	"commuta_admin/internal/middleware"
	"commuta_admin/internal/session"
	"commuta_admin/internal/views"
)

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginPage renders GET /login.
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login", views.Page{Title: "Sign in"})
}

// Login handles POST /login: exchange the credentials for an API token,
// store it under a fresh session id and hand the browser a cookie for it.
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login", views.Page{
			Title: "Sign in",
			Error: "Email and password are required",
			Data:  form.Email,
		})
		return
	}
	email := strings.TrimSpace(form.Email)

	sid := uuid.NewString()
	sess := session.New(h.store, sid)
	if err := api.New(h.api, sess).Login(c.Request.Context(), email, form.Password); err != nil {
		msg := "Unable to login"
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			msg = apiErr.Message
		}
		logrus.WithError(err).WithField("email", email).Warn("admin login failed")
		c.HTML(http.StatusUnauthorized, "login", views.Page{Title: "Sign in", Error: msg, Data: email})
		return
	}

	token, err := middleware.GenerateSessionToken(h.secret, sid, h.ttl)
	if err != nil {
		logrus.WithError(err).Error("failed to sign session cookie")
		_ = sess.Clear(c.Request.Context())
		c.HTML(http.StatusInternalServerError, "login", views.Page{Title: "Sign in", Error: "Unable to login", Data: email})
		return
	}
	middleware.SetSessionCookie(c, token, h.ttl)

	logrus.WithFields(logrus.Fields{"email": email, "sid": sid}).Info("admin signed in")
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /logout.
func (h *Handler) Logout(c *gin.Context) {
	h.signOut(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
