package routes

import (
	"github.com/gin-gonic/gin"

	"commuta_admin/internal/controllers"
)

func AuthRoutes(r *gin.Engine, h *controllers.Handler, guard gin.HandlerFunc) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.POST("/logout", guard, h.Logout)
}
