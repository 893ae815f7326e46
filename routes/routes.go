package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"musicschool/handlers"
)

// RegisterBookingRoutes registers the reservation endpoints the widget calls.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/create-calendar-event", hb.CreateCalendarEventHandler)
		api.POST("/send-confirmation", hb.SendConfirmationHandler)
		api.POST("/book", hb.BookCourseHandler)
		api.GET("/catalog", hb.CatalogHandler)
	}
}

// RegisterContactRoutes registers the contact-form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.ContactHandler)
}

// RegisterRoutes sets up CORS for the browser widget and registers all
// endpoint groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterBookingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
}
