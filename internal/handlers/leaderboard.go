package handlers

import (
	"net/http"
	"strconv"

	"github.com/Tareq669/bot-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	scoring *services.ScoreService
}

func NewLeaderboardHandler(scoring *services.ScoreService) *LeaderboardHandler {
	return &LeaderboardHandler{scoring: scoring}
}

// GetLeaderboard godoc
// @Summary      Group leaderboard
// @Description  Records ordered by the requested metric (points, weekly_points, wins, streak)
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Param        metric query string false "Metric" default(points)
// @Param        limit query int false "Limit" default(10)
// @Success      200 {array} models.ScoreRecord
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	metric := c.DefaultQuery("metric", services.MetricPoints)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	records, err := h.scoring.Leaderboard(chatID, metric, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}
