package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wms-dojo/picking-trainer-api/internal/application/auth"
	"github.com/wms-dojo/picking-trainer-api/internal/application/training"
	"github.com/wms-dojo/picking-trainer-api/internal/application/usecase"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/trainer"
	"github.com/wms-dojo/picking-trainer-api/internal/infrastructure/postgres"
	httpRouter "github.com/wms-dojo/picking-trainer-api/internal/interfaces/http"
	"github.com/wms-dojo/picking-trainer-api/pkg/config"
	"github.com/wms-dojo/picking-trainer-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("設定の読み込み: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("アプリケーションを起動します")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL への接続")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	historyRepo := postgres.NewHistoryRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	historyUC := usecase.NewHistoryUseCase(historyRepo)

	// 出題の乱数源。nil を渡すと時刻シードで初期化される。
	gen := trainer.NewGenerator(nil)
	trainingUC := training.NewSessionUseCase(gen, productRepo, sessionRepo, historyRepo, training.Defaults{
		QuestionCount: cfg.Trainer.DefaultQuestionCount,
		SlipCount:     cfg.Trainer.DefaultSlipCount,
		ItemsPerSlip:  cfg.Trainer.DefaultItemsPerSlip,
		TimeLimitSec:  cfg.Trainer.DefaultTimeLimitSec,
	})

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Picking Dojo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		HistoryUC:  historyUC,
		TrainingUC: trainingUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP サーバーが終了しました")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("終了シグナルを受信、サーバーを停止します...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("サーバーの停止")
	}

	log.Info().Msg("アプリケーションを停止しました")
}
