// main.go - Entry point for the course catalog backend server

package main // Declares the package name

import ( // Import required packages
	"context"   // For shutdown deadlines
	"errors"    // For recognizing a closed server
	"net/http"  // HTTP server
	"os"        // For exit codes
	"os/signal" // For graceful shutdown
	"syscall"   // For SIGTERM
	"time"      // For the shutdown deadline

	"go-course-backend/config"   // Project config management
	"go-course-backend/database" // Database connection and setup
	"go-course-backend/logger"   // Leveled logging
	"go-course-backend/mqtt"     // MQTT client for course events
	"go-course-backend/routes"   // Router with every endpoint

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	os.Exit(run())
}

func run() int {
	// STEP 1: Load configuration and establish connections
	if err := config.LoadDotEnv(); err != nil { // Pick up a local .env if present
		logger.Error("reading .env: ", err)
		return 1
	}
	cfg := config.Load() // Load configuration (port, DB path, MQTT broker, JWT secret)
	logger.InitLogger(logger.ParseLevel(cfg.LogLevel))
	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
		logger.Error("DB connection error: ", err)
		return 1
	}
	defer database.Close()

	if err := mqtt.Connect(cfg.MQTTBroker, cfg.MQTTClientID); err != nil { // Events are optional
		logger.Warning("MQTT connection error, course events disabled: ", err)
	}
	defer mqtt.Disconnect()

	// STEP 2: Create Gin router and configure routes
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.New(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// STEP 3: Start the web server and wait for a stop signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error: ", err)
			return 1
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error: ", err)
			return 1
		}
	}
	return 0
}
