package handler

import (
	"net/http"

	"tasktrack/internal/model"
	"tasktrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TeamHandler struct {
	service service.TeamServiceInterface
	log     *logrus.Logger
}

func NewTeamHandler(service service.TeamServiceInterface, log *logrus.Logger) *TeamHandler {
	return &TeamHandler{service: service, log: log}
}

// TeamRequest представляет запрос на создание или обновление команды
type TeamRequest struct {
	Name string `json:"name"`
}

// TeamMembersRequest представляет запрос на изменение состава команды
type TeamMembersRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Mode        string   `json:"mode"` // additive (default) or replace
}

// TeamResponse представляет ответ с данными команды
type TeamResponse struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Members []EmployeeSummary `json:"members"`
}

func toTeamResponse(team *model.Team) TeamResponse {
	return TeamResponse{
		ID:      team.ID.String(),
		Name:    team.Name,
		Members: toEmployeeSummaries(team.Employees),
	}
}

// Create godoc
// @Summary      Create a team
// @Description  Admin only
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        request body TeamRequest true "Team data"
// @Success      201 {object} TeamResponse
// @Failure      403 {object} map[string]string
// @Failure      422 {object} map[string][]string
// @Security     BearerAuth
// @Router       /api/teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	team, err := h.service.Create(c.Request.Context(), req.Name, actor)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toTeamResponse(team))
}

// Update godoc
// @Summary      Rename a team
// @Description  Admin only
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        id path string true "Team ID"
// @Param        request body TeamRequest true "Team data"
// @Success      200 {object} TeamResponse
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/teams/{id} [put]
func (h *TeamHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "Invalid team ID format")
	if !ok {
		return
	}

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	team, err := h.service.Update(c.Request.Context(), teamID, req.Name, actor)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTeamResponse(team))
}

// Delete godoc
// @Summary      Delete a team
// @Description  Admin only
// @Tags         Teams
// @Param        id path string true "Team ID"
// @Success      204
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/teams/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "Invalid team ID format")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), teamID, actor); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMembers godoc
// @Summary      List a team's members
// @Tags         Teams
// @Produce      json
// @Param        id path string true "Team ID"
// @Success      200 {array} EmployeeSummary
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/teams/{id}/members [get]
func (h *TeamHandler) GetMembers(c *gin.Context) {
	teamID, ok := parseIDParam(c, "Invalid team ID format")
	if !ok {
		return
	}

	members, err := h.service.Members(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeSummaries(members))
}

// UpdateMembers godoc
// @Summary      Add or replace team members
// @Description  Admin only. Additive mode skips ids already on the roster; replace mode makes the roster exactly the given set
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        id path string true "Team ID"
// @Param        request body TeamMembersRequest true "Member ids and mode"
// @Success      200 {array} EmployeeSummary
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      422 {object} map[string][]string
// @Security     BearerAuth
// @Router       /api/teams/{id}/members [patch]
func (h *TeamHandler) UpdateMembers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "Invalid team ID format")
	if !ok {
		return
	}

	var req TeamMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	employeeIDs := make([]uuid.UUID, 0, len(req.EmployeeIDs))
	for _, raw := range req.EmployeeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
			return
		}
		employeeIDs = append(employeeIDs, id)
	}

	members, err := h.service.UpdateMembers(c.Request.Context(), teamID, employeeIDs, req.Mode, actor)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeSummaries(members))
}

// GetTeamsForEmployee godoc
// @Summary      List every team an employee belongs to
// @Tags         Teams
// @Produce      json
// @Param        id path string true "Employee ID"
// @Success      200 {array} TeamSummary
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/employees/{id}/teams [get]
func (h *TeamHandler) GetTeamsForEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "Invalid employee ID format")
	if !ok {
		return
	}

	teams, err := h.service.TeamsForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	summaries := make([]TeamSummary, 0, len(teams))
	for i := range teams {
		summaries = append(summaries, TeamSummary{
			ID:   teams[i].ID.String(),
			Name: teams[i].Name,
		})
	}
	c.JSON(http.StatusOK, summaries)
}

// TeamSummary представляет краткие данные команды
type TeamSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
