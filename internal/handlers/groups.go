package handlers

import (
	"net/http"
	"strconv"

	"github.com/Tareq669/bot-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groups *services.GroupService
	rounds *services.RoundManager
	game   *services.GameService
}

func NewGroupHandler(groups *services.GroupService, rounds *services.RoundManager, game *services.GameService) *GroupHandler {
	return &GroupHandler{groups: groups, rounds: rounds, game: game}
}

func chatIDParam(c *gin.Context) (int64, bool) {
	chatID, err := strconv.ParseInt(c.Param("chat_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid chat id"})
		return 0, false
	}
	return chatID, true
}

// GetSettings godoc
// @Summary      Get group game settings
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Success      200 {object} models.Group
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/settings [get]
func (h *GroupHandler) GetSettings(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	group, err := h.groups.Get(chatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, group)
}

type UpdateSettingsRequest struct {
	Enabled         *bool `json:"enabled,omitempty"`
	AutoQuestions   *bool `json:"auto_questions,omitempty"`
	IntervalMinutes *int  `json:"interval_minutes,omitempty"`
	TimeoutSeconds  *int  `json:"timeout_seconds,omitempty"`
}

// UpdateSettings godoc
// @Summary      Update group game settings
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Param        request body UpdateSettingsRequest true "Settings"
// @Success      200 {object} models.Group
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/settings [put]
func (h *GroupHandler) UpdateSettings(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if req.Enabled != nil {
		if err := h.groups.SetEnabled(chatID, *req.Enabled); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		if !*req.Enabled {
			h.rounds.Cancel(chatID)
		}
	}
	if req.AutoQuestions != nil {
		if err := h.groups.SetAutoQuestions(chatID, *req.AutoQuestions); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
	}
	if req.IntervalMinutes != nil {
		if err := h.groups.SetInterval(chatID, *req.IntervalMinutes); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}
	if req.TimeoutSeconds != nil {
		if err := h.groups.SetTimeout(chatID, *req.TimeoutSeconds); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	group, err := h.groups.Get(chatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, group)
}

type StartRoundRequest struct {
	Type string `json:"type" example:"quiz"`
}

// StartRound godoc
// @Summary      Start a round in a chat
// @Tags         rounds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Param        request body StartRoundRequest true "Round type"
// @Success      201 {object} services.Round
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/rounds [post]
func (h *GroupHandler) StartRound(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req StartRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	round, err := h.game.StartTyped(chatID, req.Type)
	switch err {
	case nil:
		c.JSON(http.StatusCreated, round)
	case services.ErrRoundActive, services.ErrDailyAlreadyRan:
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case services.ErrGameDisabled, services.ErrUnknownType:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// GetActiveRound godoc
// @Summary      Get the chat's active round, if any
// @Tags         rounds
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Success      200 {object} services.Round
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/rounds/active [get]
func (h *GroupHandler) GetActiveRound(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	round, ok := h.rounds.ActiveRound(chatID)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active round"})
		return
	}
	c.JSON(http.StatusOK, round)
}

// CancelRound godoc
// @Summary      Cancel the chat's active round
// @Tags         rounds
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Success      200 {object} MessageResponse
// @Router       /api/v1/groups/{chat_id}/rounds/active [delete]
func (h *GroupHandler) CancelRound(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	h.rounds.Cancel(chatID)
	c.JSON(http.StatusOK, MessageResponse{Message: "round cancelled"})
}
