package main

import (
	"emberfall_backend/config"
	"emberfall_backend/handler"
	"emberfall_backend/repository"
	"emberfall_backend/service"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func StartServer() {
	cfg, errRead := config.Read("./cfg.json")
	if errRead != nil {
		log.Fatalf("error reading cfg.json: %v", errRead)
	}

	logFileName := "log_" + time.Now().Format("2006-01-02_15-04-05") + ".log"
	loggerService, err := service.NewLoggerService(logFileName, cfg.Version)
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer loggerService.Shutdown()

	gameRepo, errRepo := repository.New(cfg.Dsn, cfg.WorldID)
	if errRepo != nil {
		log.Fatalf("error creating repository: %v", errRepo)
		return
	}

	registry := prometheus.NewRegistry()
	playersOnlineGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "players_online",
		Help: "Players currently online on this world.",
	})
	registry.MustRegister(playersOnlineGauge)

	worldService := service.NewWorldService(gameRepo, cfg, loggerService)
	worldService.EnsureFirstWorld()

	authService := service.NewAuthService(gameRepo, cfg.AuthType, loggerService)
	playerService := service.NewPlayerService(gameRepo, loggerService)
	vipService := service.NewVIPService(gameRepo, loggerService)
	presenceTracker := service.NewPresenceTracker(gameRepo, playersOnlineGauge, loggerService)

	gameHandler := handler.New(authService, playerService, worldService, vipService, presenceTracker, loggerService, cfg.AuthType == service.AuthTypeSession)

	fiberConfig := fiber.Config{
		BodyLimit:      4 * 1024 * 10,
		Concurrency:    1024,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		ReadBufferSize: 4 * 1024 * 10,
		Prefork:        false,
	}
	app := fiber.New(fiberConfig)
	app.Use(logger.New(), compress.New())

	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        500,
		Expiration: 1 * time.Hour,
		KeyGenerator: func(ctx *fiber.Ctx) string {
			realIP := ctx.Get("X-Real-IP")
			if realIP == "" {
				realIP = ctx.IP()
			}
			return realIP
		},
		LimitReached: func(ctx *fiber.Ctx) error {
			ip := ctx.Get("X-Real-IP")
			if ip == "" {
				ip = ctx.IP()
			}
			loggerService.Info(fmt.Sprintf("Rate limit reached for IP: %s", ip))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   true,
				"message": "You've reached the limit of HTTP requests. Try again later.",
			})
		},
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	SetupRoutes(app, gameHandler)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	loggerService.Info(fmt.Sprintf("Starting server on %s", cfg.Port))
	go func() {
		if err = app.Listen(cfg.Port); err != nil {
			loggerService.Exception(fmt.Sprintf("error starting server: %v", err))
			os.Exit(1)
		}
	}()

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				retentionPeriod := 7 * 24 * time.Hour
				if err = loggerService.ClearOldLogs(retentionPeriod); err != nil {
					loggerService.Exception(fmt.Sprintf("Error cleaning old logs: %v", err))
				}
			case <-done:
				loggerService.Info("Stopping log cleanup ticker.")
				return
			}
		}
	}()

	<-stop

	loggerService.Info("Shutting down server...")
	if err = app.Shutdown(); err != nil {
		loggerService.Exception(fmt.Sprintf("error during shutdown: %v", err))
	}

	close(done)
}

func SetupRoutes(app *fiber.App, gameHandler *handler.GameHandler) {
	api := app.Group("game-api")

	v1 := api.Group("v1")

	v1.Post("/login", gameHandler.Login)
	v1.Get("/info", gameHandler.ServerInfo)
	v1.Get("/character/:name", gameHandler.CharacterInfo)
	v1.Post("/presence", gameHandler.PresenceUpdate)

	v1.Get("/vip/:accountId", gameHandler.VIPList)
	v1.Post("/vip/add", gameHandler.VIPAdd)
	v1.Post("/vip/edit", gameHandler.VIPEdit)
	v1.Post("/vip/remove", gameHandler.VIPRemove)

	v1.Get("/vip-groups/:accountId", gameHandler.VIPGroupList)
	v1.Post("/vip-groups/add", gameHandler.VIPGroupAdd)
	v1.Post("/vip-groups/edit", gameHandler.VIPGroupEdit)
	v1.Post("/vip-groups/remove", gameHandler.VIPGroupRemove)
	v1.Post("/vip-groups/add-member", gameHandler.VIPGroupAddMember)
	v1.Post("/vip-groups/remove-member", gameHandler.VIPGroupRemoveMember)
}
