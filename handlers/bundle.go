package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints.
	CreateCalendarEventHandler gin.HandlerFunc
	BookCourseHandler          gin.HandlerFunc

	// Email endpoints.
	SendConfirmationHandler gin.HandlerFunc
	ContactHandler          gin.HandlerFunc

	// Catalog endpoint.
	CatalogHandler gin.HandlerFunc
}
