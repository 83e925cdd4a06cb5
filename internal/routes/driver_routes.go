package routes

import (
	"github.com/gin-gonic/gin"

	"commuta_admin/internal/controllers"
)

func DriverRoutes(admin *gin.RouterGroup, h *controllers.Handler) {
	drivers := admin.Group("/drivers")
	{
		drivers.GET("", h.ListDrivers)
		drivers.GET("/export.csv", h.ExportDrivers)
		drivers.GET("/:id", h.GetDriver)
		drivers.GET("/:id/location", h.DriverLocation)
	}
}
