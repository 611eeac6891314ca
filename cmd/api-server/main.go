package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fitfeast/internal/api"
	"fitfeast/internal/app"
	"fitfeast/internal/clipper"
	"fitfeast/internal/config"
	"fitfeast/internal/database"
	"fitfeast/internal/telegram"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireAPI(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// 2. Open the database and wire the application
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	application := app.NewFromDB(db, clipper.NewClipper(nil))
	router := api.NewRouter(application, cfg.JWTSecret)

	// 3. Optional Telegram webhook
	if cfg.TelegramEnabled() {
		bot, err := telegram.NewBot(cfg, application)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram Bot: %v", err)
		}
		router.POST("/webhook", gin.WrapF(bot.HandleWebhook))
	} else {
		log.Println("Telegram bot disabled: TELEGRAM_BOT_TOKEN or TELEGRAM_WEBHOOK_URL not set")
	}

	// 4. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("FitFeast API listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
