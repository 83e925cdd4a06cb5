package routes

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"commuta_admin/internal/controllers"
	"commuta_admin/internal/logger"
	"commuta_admin/internal/middleware"
	"commuta_admin/internal/session"
	"commuta_admin/internal/views"
)

type Config struct {
	Handler *controllers.Handler
	Store   session.Store
	Secret  []byte
	// AccessLog receives one line per request; nil disables it.
	AccessLog io.Writer
}

func SetupRouter(cfg Config) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.AccessLog != nil {
		r.Use(logger.RequestLogger(cfg.AccessLog))
	}

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	guard := middleware.RequireSession(cfg.Secret, cfg.Store)
	h := cfg.Handler

	AuthRoutes(r, h, guard)

	admin := r.Group("/")
	admin.Use(guard)
	{
		AdminRoutes(admin, h)
		RiderRoutes(admin, h)
		DriverRoutes(admin, h)
		TripRoutes(admin, h)
		ForumRoutes(admin, h)
		ContactRoutes(admin, h)
		PayoutRoutes(admin, h)
	}

	return r, nil
}
