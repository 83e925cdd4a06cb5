package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"commuta_admin/internal/api"
	"commuta_admin/internal/config"
	"commuta_admin/internal/controllers"
	"commuta_admin/internal/logger"
	"commuta_admin/internal/middleware"
	"commuta_admin/internal/query"
	"commuta_admin/internal/routes"
	"commuta_admin/internal/session"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	accessLog := logger.Setup(cfg.Log)
	gin.SetMode(cfg.GinMode)

	store, err := sessionStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("session store unavailable")
	}

	h := controllers.New(controllers.Deps{
		API: api.Config{
			BaseURL: cfg.API.BaseURL,
			Timeout: cfg.API.Timeout,
		},
		Store:  store,
		Cache:  query.NewCache(query.Options{StaleTime: cfg.Query.StaleTime, RenderWait: cfg.Query.RenderWait}),
		Secret: []byte(cfg.Session.Secret),
		TTL:    cfg.Session.TTL,
	})

	r, err := routes.SetupRouter(routes.Config{
		Handler:   h,
		Store:     store,
		Secret:    []byte(cfg.Session.Secret),
		AccessLog: accessLog,
	})
	if err != nil {
		logrus.WithError(err).Fatal("router setup failed")
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           middleware.EnableCORS(cfg.CORSOrigins, r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server running at :%s", cfg.Port)
		logrus.WithField("api", cfg.API.BaseURL).Info("admin dashboard started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}

// sessionStore picks where admin API tokens live between requests.
func sessionStore(cfg config.Config) (session.Store, error) {
	if cfg.Session.Store != "postgres" {
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}
	db, err := config.InitDB(cfg.DB)
	if err != nil {
		return nil, err
	}
	return session.NewGormStore(db, cfg.Session.TTL), nil
}
