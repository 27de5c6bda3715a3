package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/agnijaravdo/discord-bot/cmd/api/app/routes"
	"github.com/agnijaravdo/discord-bot/logger"
	"github.com/agnijaravdo/discord-bot/metrics"
	"github.com/agnijaravdo/discord-bot/middlewares"
	"github.com/agnijaravdo/discord-bot/pkg/config"
	"github.com/agnijaravdo/discord-bot/pkg/database"
	"github.com/agnijaravdo/discord-bot/pkg/discord"
	"github.com/agnijaravdo/discord-bot/pkg/giphy"
	"github.com/agnijaravdo/discord-bot/pkg/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	configPath := utils.GetEnv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// Misconfiguration fails the boot, it must not degrade every request.
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("DB not init: %v", err)
	}
	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}
	if err := database.SeedInitialData(db); err != nil {
		log.Fatalf("DB seeding failed: %v", err)
	}

	logr, err := logger.InitLogger()
	if err != nil {
		panic("Failed to initialize zap logger: " + err.Error())
	}
	logr.Info("Logger initialized")

	metrics.InitAPIMetrics()

	gifs, err := giphy.NewClient(cfg.Giphy.APIKey, logr)
	if err != nil {
		logr.Fatal("Failed to initialize Giphy client", zap.Error(err))
	}

	notifier, err := discord.NewNotifier(cfg.Discord.Token, logr)
	if err != nil {
		logr.Fatal("Failed to create Discord session", zap.Error(err))
	}
	if err := notifier.Start(); err != nil {
		// Without valid chat credentials the session never comes online;
		// requests then fail at delivery instead of at boot.
		logr.Error("Discord session failed to open", zap.Error(err))
	}

	router := gin.Default()
	router.Use(middlewares.RequestID())
	router.Use(middlewares.GinMetricsMiddleware())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Messages(router.Group("/messages"), db, gifs, notifier, cfg.Discord.ServerID, cfg.Discord.ChannelID, logr)
	routes.Templates(router.Group("/templates"), db, logr)
	routes.Sprints(router.Group("/sprints"), db, logr)

	go handleShutdown(notifier, logr)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logr.Fatal("Failed to start server", zap.Error(err))
	}
}

func handleShutdown(notifier *discord.Notifier, log *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Shutdown signal received", zap.String("signal", sig.String()))

	if err := notifier.Stop(); err != nil {
		log.Error("Error closing Discord session", zap.Error(err))
	} else {
		log.Info("Discord session closed cleanly")
	}

	os.Exit(0)
}
