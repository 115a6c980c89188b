package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wms-dojo/picking-trainer-api/internal/application/dto"
	"github.com/wms-dojo/picking-trainer-api/internal/application/usecase"
	"github.com/wms-dojo/picking-trainer-api/internal/domain"
)

// HistoryHandler は練習履歴の HTTP ハンドラ。対象は常にトークンのユーザー自身。
type HistoryHandler struct {
	uc *usecase.HistoryUseCase
}

// NewHistoryHandler はハンドラを構築する。
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Record godoc
// @Summary      練習結果の記録(normal / timeAttack)
// @Tags         history
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordHistoryRequest  true  "結果"
// @Success      201   {object}  dto.HistoryEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/history [post]
func (h *HistoryHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "リクエストボディが不正です"})
	}
	out, err := h.uc.Record(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode は normal か timeAttack を指定してください"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      履歴一覧(追記順)
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.HistoryListResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Best godoc
// @Summary      自己ベスト取得
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        mode       query  string  true   "normal | timeAttack | slip"
// @Param        timeLimit  query  int     false  "制限時間(秒)。timeAttack のみ"
// @Success      200  {object}  dto.BestScoreResponse
// @Router       /api/history/best [get]
func (h *HistoryHandler) Best(c *fiber.Ctx) error {
	mode := c.Query("mode")
	if mode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode は必須です"})
	}
	var timeLimit *int
	if v := c.QueryInt("timeLimit", -1); v >= 0 {
		timeLimit = &v
	}
	out, err := h.uc.Best(GetUserID(c), mode, timeLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      ブラウザ版履歴の取り込み
// @Tags         history
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportHistoryRequest  true  "エクスポートされた履歴配列"
// @Success      200   {object}  dto.ImportResponse
// @Router       /api/history/import [post]
func (h *HistoryHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "リクエストボディが不正です"})
	}
	out, err := h.uc.ImportLegacy(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
