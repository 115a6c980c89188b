package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wms-dojo/picking-trainer-api/internal/application/dto"
	"github.com/wms-dojo/picking-trainer-api/internal/application/training"
	"github.com/wms-dojo/picking-trainer-api/internal/domain"
)

// TrainingHandler は練習セッションの HTTP ハンドラ。
type TrainingHandler struct {
	uc *training.SessionUseCase
}

// NewTrainingHandler はハンドラを構築する。
func NewTrainingHandler(uc *training.SessionUseCase) *TrainingHandler {
	return &TrainingHandler{uc: uc}
}

// StartPractice godoc
// @Summary      通常練習・タイムアタックの出題
// @Tags         training
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartPracticeRequest  true  "モードと出題数"
// @Success      200   {object}  dto.PracticeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/training/practice [post]
func (h *TrainingHandler) StartPractice(c *fiber.Ctx) error {
	var in dto.StartPracticeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "リクエストボディが不正です"})
	}
	out, err := h.uc.StartPractice(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode は normal か timeAttack を指定してください"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StartSlips godoc
// @Summary      伝票モードのセッション開始
// @Tags         training
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartSlipsRequest  true  "伝票枚数と商品数"
// @Success      201   {object}  dto.SessionResponse
// @Router       /api/training/slips [post]
func (h *TrainingHandler) StartSlips(c *fiber.Ctx) error {
	var in dto.StartSlipsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "リクエストボディが不正です"})
	}
	out, err := h.uc.StartSlips(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSession godoc
// @Summary      セッション取得
// @Tags         training
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "セッション ID"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/training/slips/{id} [get]
func (h *TrainingHandler) GetSession(c *fiber.Ctx) error {
	out, err := h.uc.GetSession(c.Params("id"), GetUserID(c))
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(out)
}

// SubmitSlips godoc
// @Summary      回答済み伝票の送信(採点)
// @Tags         training
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "セッション ID"
// @Param        body  body  dto.SubmitSlipsRequest  true  "回答済み伝票と経過時間"
// @Success      200   {object}  dto.SubmitSlipsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/training/slips/{id}/result [put]
func (h *TrainingHandler) SubmitSlips(c *fiber.Ctx) error {
	var in dto.SubmitSlipsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "リクエストボディが不正です"})
	}
	out, err := h.uc.SubmitSlips(c.Params("id"), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrSessionFinished) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_FINISHED", Message: "このセッションは採点済みです"})
		}
		return h.sessionError(c, err)
	}
	return c.JSON(out)
}

// PrintSlip godoc
// @Summary      伝票の印刷用 HTML
// @Tags         training
// @Security     Bearer
// @Produce      html
// @Param        id      path  string  true  "セッション ID"
// @Param        slipId  path  string  true  "伝票 ID"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/training/slips/{id}/print/{slipId} [get]
func (h *TrainingHandler) PrintSlip(c *fiber.Ctx) error {
	html, err := h.uc.PrintSlip(c.Params("id"), GetUserID(c), c.Params("slipId"))
	if err != nil {
		return h.sessionError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *TrainingHandler) sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "セッションが見つかりません"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "他のユーザーのセッションです"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
