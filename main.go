package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aditbhattarai/Adit-ko-website/db"
	_ "github.com/aditbhattarai/Adit-ko-website/docs"
	"github.com/aditbhattarai/Adit-ko-website/mailer"
	"github.com/aditbhattarai/Adit-ko-website/routes"
	"github.com/aditbhattarai/Adit-ko-website/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Portfolio API
// @version 1.0
// @description Backend for the portfolio website: contact form, visit tracking and admin statistics
// @host localhost:3000
// @BasePath /
func main() {
	gin.SetMode(gin.ReleaseMode)

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using the system environment")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./portfolio.db"
	}
	store, err := db.Open(dbPath)
	if err != nil {
		utils.LogError(err, "Error opening database")
		panic("Could not open the database")
	}
	utils.LogSuccess("Connected to SQLite database")

	notifier := mailer.NewFromEnv()
	if err := notifier.Verify(); err != nil {
		utils.LogError(err, "Email configuration error, notifications will not be sent")
	} else {
		utils.LogSuccess("Email server is ready to send messages")
	}

	r := routes.SetupRouter(store, notifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		utils.LogInfo("Server running on http://localhost:" + port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError(err, "Error starting the server")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.LogError(err, "Error during server shutdown")
	}
	if err := store.Close(); err != nil {
		utils.LogError(err, "Error closing database")
	} else {
		utils.LogInfo("Database connection closed")
	}
}
