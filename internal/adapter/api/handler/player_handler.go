package handler

import (
	"strconv"

	"xenopets/internal/domain/entity"
	"xenopets/internal/usecase"
	"xenopets/pkg/response"

	"github.com/labstack/echo/v4"
)

type PlayerHandler struct {
	playerUseCase *usecase.PlayerUseCase
}

func NewPlayerHandler(playerUseCase *usecase.PlayerUseCase) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
	}
}

// SearchPlayers answers GET /v1/players/search?q=...&seq=N. The seq token is
// echoed back so the client can drop late responses from older searches.
func (h *PlayerHandler) SearchPlayers(c echo.Context) error {
	query := c.QueryParam("q")
	seq, _ := strconv.ParseInt(c.QueryParam("seq"), 10, 64)

	result, err := h.playerUseCase.SearchPlayers(c.Request().Context(), query, seq)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *PlayerHandler) GetPlayerProfile(c echo.Context) error {
	profile, err := h.playerUseCase.GetPlayerProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

type grantCurrencyRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Currency string `json:"currency" validate:"required,oneof=xenocoins cash"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
}

func (h *PlayerHandler) GrantCurrency(c echo.Context) error {
	var req grantCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("uid").(string)

	err := h.playerUseCase.GrantCurrency(
		c.Request().Context(),
		adminID,
		req.UserID,
		entity.CurrencyKind(req.Currency),
		req.Amount,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "granted"})
}
