package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	defer RecoverFromPanic("main")

	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := LoadConfig()

	if err := InitLogger(cfg.LogPath, ParseLogLevel(cfg.LogLevel)); err != nil {
		log.Printf("Warning: file logging unavailable: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		Logger().Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	Logger().Info("%s v%s starting up", AppName, AppVersion)

	checker := NewChecker(cfg)

	cronManager := StartScheduler(checker.cache)
	defer cronManager.Stop()

	// Discord surface is optional
	if cfg.BotToken != "" {
		bot, err := NewBot(cfg, checker)
		if err != nil {
			Logger().Error("Discord bot unavailable: %v", err)
		} else if err := bot.Start(); err != nil {
			Logger().Error("Discord bot failed to start: %v", err)
		} else {
			defer bot.Stop()
			Logger().Info("Discord bot online")
		}
	}

	server := NewServer(cfg, checker)
	go func() {
		defer RecoverFromPanic("server")
		if err := server.Start(); err != nil {
			Logger().Error("HTTP server failed: %v", err)
		}
	}()
	Logger().Info("Listening on http://localhost:%d", cfg.DashboardPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	Logger().Info("Shutting down")
}
