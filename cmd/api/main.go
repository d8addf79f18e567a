package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gorm.io/gorm"

	appService "studysync/internal/application/service"
	"studysync/internal/infrastructure/analytics"
	"studysync/internal/infrastructure/database/sqlite"
	"studysync/internal/infrastructure/push"
	"studysync/internal/infrastructure/scheduler"
	"studysync/internal/interfaces/api/handler"
	"studysync/internal/interfaces/api/router"
	appLogger "studysync/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, cronScheduler *scheduler.Scheduler, db *gorm.DB, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	log.Println("Stopping scheduler...")
	cronScheduler.Stop()
	log.Println("Scheduler stopped.")

	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(db); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// The context informs the server it has 5 seconds to finish the
	// request it is currently handling.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	done <- true
}

func envBool(key string, defaultVal bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultVal
	}
	return v
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
		appLog.Warn("PORT environment variable not set, defaulting to 8080")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		appLog.Error("Invalid PORT environment variable", err)
		os.Exit(1)
	}

	// --- Infrastructure ---
	db, err := sqlite.NewDB()
	if err != nil {
		appLog.Error("Failed to initialize database", err)
		os.Exit(1)
	}
	sessionRepo := sqlite.NewSessionRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	calendarRepo := sqlite.NewCalendarRepository(db)
	appLog.Info("Database and repositories initialized.")

	cronScheduler := scheduler.NewScheduler(appLog)

	// LINE push delivery when channel credentials are present, log-only
	// delivery otherwise.
	var pusher push.Pusher
	if lineClient, err := push.NewLineClient(appLog); err != nil {
		appLog.Warn(fmt.Sprintf("LINE push unavailable (%v), notifications will be logged", err))
		pusher = push.NewLogPusher(appLog)
	} else {
		pusher = lineClient
	}

	emitter := analytics.NewLogEmitter(appLog)

	// --- Application Services ---
	allowNotifications := envBool("ALLOW_NOTIFICATIONS", true)
	allowCalendar := envBool("ALLOW_CALENDAR", true)

	settingsSvc := appService.NewSettingsService(settingsRepo, appLog)
	notificationSvc := appService.NewNotificationService(cronScheduler, pusher, allowNotifications, appLog)
	calendarSvc := appService.NewCalendarService(calendarRepo, allowCalendar, appLog)
	sessionSvc := appService.NewSessionService(sessionRepo, settingsSvc, notificationSvc, calendarSvc, emitter, appLog)
	appLog.Info("Application services initialized.")

	// --- Reschedule pending reminders ---
	// Scheduled jobs do not survive a restart; re-derive them from the
	// stored sessions so upcoming reminders keep firing.
	if err := restoreSchedules(context.Background(), sessionSvc, appLog); err != nil {
		appLog.Error("Failed to restore reminder schedules on startup", err)
	}

	// --- API Handlers ---
	sessionHandler := handler.NewSessionHandler(sessionSvc, appLog)
	settingsHandler := handler.NewSettingsHandler(settingsSvc, sessionSvc, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	echoRouter := router.NewRouter(&router.Config{
		SessionHandler:  sessionHandler,
		SettingsHandler: settingsHandler,
		Logger:          appLog,
	})

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, cronScheduler, db, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	<-done
	appLog.Info("Graceful shutdown complete.")
}

// restoreSchedules re-links in-memory notification schedules with the
// stored sessions after a restart by running the timezone resync flow,
// which cancels stale references and schedules fresh ones.
func restoreSchedules(ctx context.Context, sessionSvc appService.SessionService, log appLogger.Logger) error {
	log.Info("Restoring reminder schedules from stored sessions...")
	return sessionSvc.SyncWithTimezone(ctx)
}
