package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wms-dojo/picking-trainer-api/internal/application/auth"
	"github.com/wms-dojo/picking-trainer-api/internal/application/training"
	"github.com/wms-dojo/picking-trainer-api/internal/application/usecase"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
)

// RouterDeps はルーターの依存。
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	HistoryUC  *usecase.HistoryUseCase
	TrainingUC *training.SessionUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router は API のルートを登録する。
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth(公開)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// 以降は Bearer トークン必須
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: 参照は全ロール、更新系は admin のみ
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	adminOnly := RequireRole(entity.RoleAdmin)
	products.Post("/", adminOnly, productHandler.Create)
	products.Post("/import", adminOnly, productHandler.Import)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Training
	trainingGroup := protected.Group("/training")
	trainingHandler := NewTrainingHandler(deps.TrainingUC)
	trainingGroup.Post("/practice", trainingHandler.StartPractice)
	trainingGroup.Post("/slips", trainingHandler.StartSlips)
	trainingGroup.Get("/slips/:id", trainingHandler.GetSession)
	trainingGroup.Put("/slips/:id/result", trainingHandler.SubmitSlips)
	trainingGroup.Get("/slips/:id/print/:slipId", trainingHandler.PrintSlip)

	// History
	historyGroup := protected.Group("/history")
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	historyGroup.Post("/", historyHandler.Record)
	historyGroup.Get("/", historyHandler.List)
	historyGroup.Get("/best", historyHandler.Best)
	historyGroup.Post("/import", historyHandler.Import)
}
