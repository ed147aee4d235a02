package handlers

import (
	"net/http"
	"strconv"

	"github.com/Tareq669/bot-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teams *services.TeamService
}

func NewTeamHandler(teams *services.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// ListTeams godoc
// @Summary      Teams of a group by points
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Param        limit query int false "Limit" default(10)
// @Success      200 {array} models.Team
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	teams, err := h.teams.ListTeamsByPoints(chatID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam godoc
// @Summary      One team by name
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id path int true "Chat ID"
// @Param        name path string true "Team name"
// @Success      200 {object} models.Team
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/groups/{chat_id}/teams/{name} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	team, err := h.teams.GetTeamByName(chatID, c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, team)
}
