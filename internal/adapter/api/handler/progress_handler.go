package handler

import (
	"xenopets/internal/usecase"
	"xenopets/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProgressHandler struct {
	progressUseCase *usecase.ProgressUseCase
}

func NewProgressHandler(progressUseCase *usecase.ProgressUseCase) *ProgressHandler {
	return &ProgressHandler{
		progressUseCase: progressUseCase,
	}
}

type advanceAchievementRequest struct {
	Delta int `json:"delta" validate:"required,gt=0"`
}

func (h *ProgressHandler) AdvanceAchievement(c echo.Context) error {
	var req advanceAchievementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	achievement, err := h.progressUseCase.AdvanceAchievement(
		c.Request().Context(), uid, c.Param("id"), req.Delta)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, achievement)
}

type advanceQuestRequest struct {
	Requirement string `json:"requirement" validate:"required"`
	Delta       int    `json:"delta" validate:"required,gt=0"`
}

func (h *ProgressHandler) AdvanceQuest(c echo.Context) error {
	var req advanceQuestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	quest, err := h.progressUseCase.AdvanceQuest(
		c.Request().Context(), uid, c.Param("id"), req.Requirement, req.Delta)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quest)
}

func (h *ProgressHandler) CollectCollectible(c echo.Context) error {
	uid := c.Get("uid").(string)

	collectible, err := h.progressUseCase.CollectCollectible(
		c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, collectible)
}
