package routes

import (
	"github.com/gin-gonic/gin"

	"commuta_admin/internal/controllers"
)

func AdminRoutes(admin *gin.RouterGroup, h *controllers.Handler) {
	admin.GET("/", h.Overview)
}

func RiderRoutes(admin *gin.RouterGroup, h *controllers.Handler) {
	riders := admin.Group("/riders")
	{
		riders.GET("", h.ListRiders)
		riders.GET("/export.csv", h.ExportRiders)
		riders.GET("/:id", h.GetRider)
	}
}

func TripRoutes(admin *gin.RouterGroup, h *controllers.Handler) {
	trips := admin.Group("/trips")
	{
		trips.GET("", h.ListTrips)
		trips.GET("/export.csv", h.ExportTrips)
		trips.GET("/:id", h.GetTrip)
	}
}

func ForumRoutes(admin *gin.RouterGroup, h *controllers.Handler) {
	forum := admin.Group("/forum")
	{
		forum.GET("", h.Forum)
		forum.GET("/export.csv", h.ExportForum)
	}
}

func ContactRoutes(admin *gin.RouterGroup, h *controllers.Handler) {
	contacts := admin.Group("/contacts")
	{
		contacts.GET("", h.ListContacts)
		contacts.GET("/export.csv", h.ExportContacts)
	}
}

func PayoutRoutes(admin *gin.RouterGroup, h *controllers.Handler) {
	payouts := admin.Group("/payouts")
	{
		payouts.GET("", h.Payouts)
		payouts.GET("/export.csv", h.ExportPayouts)
		payouts.POST("/:driverId/mark-paid", h.MarkPaid)
	}
}
