package handlers

import (
	"net/http"

	"github.com/Tareq669/bot-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type TournamentHandler struct {
	tournaments *services.TournamentService
}

func NewTournamentHandler(tournaments *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournaments: tournaments}
}

// Status godoc
// @Summary      Tournament status and standings
// @Tags         tournament
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Success      200 {object} services.TournamentStatus
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/tournament [get]
func (h *TournamentHandler) Status(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	status, err := h.tournaments.Status(chatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// Start godoc
// @Summary      Start a tournament season
// @Tags         tournament
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Success      200 {object} models.Tournament
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/tournament/start [post]
func (h *TournamentHandler) Start(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	t, err := h.tournaments.Start(chatID)
	switch err {
	case nil:
		c.JSON(http.StatusOK, t)
	case services.ErrTournamentOn:
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// End godoc
// @Summary      End the tournament and pay out rewards
// @Tags         tournament
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Success      200 {object} services.TournamentStatus
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/tournament/end [post]
func (h *TournamentHandler) End(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	final, err := h.tournaments.End(chatID)
	switch err {
	case nil:
		c.JSON(http.StatusOK, final)
	case services.ErrTournamentOff:
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

type SetRewardsRequest struct {
	First  int `json:"first" binding:"required" example:"100"`
	Second int `json:"second" binding:"required" example:"60"`
	Third  int `json:"third" binding:"required" example:"40"`
}

// SetRewards godoc
// @Summary      Configure season rewards
// @Tags         tournament
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Param        request body SetRewardsRequest true "Rewards, descending"
// @Success      200 {object} models.Tournament
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/tournament/rewards [put]
func (h *TournamentHandler) SetRewards(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req SetRewardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.tournaments.SetRewards(chatID, req.First, req.Second, req.Third)
	switch err {
	case nil:
		c.JSON(http.StatusOK, t)
	case services.ErrBadRewards:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
