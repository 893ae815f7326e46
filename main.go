package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"musicschool/config"
	"musicschool/handlers"
	"musicschool/middleware"
	"musicschool/routes"
	"musicschool/services/booking"
	"musicschool/services/calendar"
	"musicschool/services/mailer"
	"musicschool/utils"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	calendarService, err := calendar.NewCalendarService(context.Background(), config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}
	mailerService := mailer.NewEmailJSMailer(config.AppConfig)
	bookingWorkflow := booking.NewBookingWorkflow(calendarService, mailerService, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	bookingHandler := handlers.NewBookingHandler(bookingWorkflow, calendarService, logger)
	mailHandler := handlers.NewMailHandler(mailerService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateCalendarEventHandler: bookingHandler.CreateCalendarEventHandler,
		BookCourseHandler:          bookingHandler.BookCourseHandler,
		SendConfirmationHandler:    mailHandler.SendConfirmationHandler,
		ContactHandler:             mailHandler.ContactHandler,
		CatalogHandler:             handlers.CatalogHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
