package handler

import (
	"net/http"
	"time"

	"tasktrack/internal/model"
	"tasktrack/internal/repository"
	"tasktrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TaskHandler struct {
	service service.TaskServiceInterface
	log     *logrus.Logger
}

func NewTaskHandler(service service.TaskServiceInterface, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{service: service, log: log}
}

// TaskRequest представляет запрос на создание задачи
type TaskRequest struct {
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Category   string     `json:"category"`
	Detail     string     `json:"detail"`
	Due        *time.Time `json:"due"`
	EmployeeID string     `json:"employee_id"`
}

// TaskUpdateRequest представляет частичное обновление задачи
type TaskUpdateRequest struct {
	Title      *string    `json:"title"`
	Status     *string    `json:"status"`
	Category   *string    `json:"category"`
	Detail     *string    `json:"detail"`
	Due        *time.Time `json:"due"`
	EmployeeID *string    `json:"employee_id"`
}

// TaskResponse представляет ответ с данными задачи
type TaskResponse struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Category   string     `json:"category"`
	Detail     string     `json:"detail"`
	Due        *time.Time `json:"due"`
	EmployeeID string     `json:"employee_id"`
}

func toTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:         task.ID.String(),
		Title:      task.Title,
		Status:     task.Status,
		Category:   task.Category,
		Detail:     task.Detail,
		Due:        task.Due,
		EmployeeID: task.EmployeeID.String(),
	}
}

func toTaskResponses(tasks []model.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, toTaskResponse(&tasks[i]))
	}
	return responses
}

// Create godoc
// @Summary      Create a task
// @Description  Creating a task for another employee requires the Admin role
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        request body TaskRequest true "Task data"
// @Success      201 {object} TaskResponse
// @Failure      403 {object} map[string]string
// @Failure      422 {object} map[string][]string
// @Security     BearerAuth
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	input := service.TaskInput{
		Title:    req.Title,
		Status:   req.Status,
		Category: req.Category,
		Detail:   req.Detail,
		Due:      req.Due,
	}
	if req.EmployeeID != "" {
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
			return
		}
		input.EmployeeID = employeeID
	}

	task, err := h.service.Create(c.Request.Context(), input, actor)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// GetByID godoc
// @Summary      Get a task by id
// @Description  Any authenticated employee may view any task
// @Tags         Tasks
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} TaskResponse
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, ok := parseIDParam(c, "Invalid task ID format")
	if !ok {
		return
	}

	task, err := h.service.Get(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update godoc
// @Summary      Update a task
// @Description  Allowed for the task owner or an Admin
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID"
// @Param        request body TaskUpdateRequest true "Fields to update"
// @Success      200 {object} TaskResponse
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "Invalid task ID format")
	if !ok {
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	input := service.TaskUpdateInput{
		Title:    req.Title,
		Status:   req.Status,
		Category: req.Category,
		Detail:   req.Detail,
		Due:      req.Due,
	}
	if req.EmployeeID != nil {
		employeeID, err := uuid.Parse(*req.EmployeeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
			return
		}
		input.EmployeeID = &employeeID
	}

	task, err := h.service.Update(c.Request.Context(), taskID, input, actor)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete godoc
// @Summary      Delete a task
// @Description  Allowed for the task owner or an Admin
// @Tags         Tasks
// @Param        id path string true "Task ID"
// @Success      204
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "Invalid task ID format")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), taskID, actor); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListByEmployee godoc
// @Summary      List an employee's tasks, paginated
// @Tags         Tasks
// @Produce      json
// @Param        id path string true "Employee ID"
// @Param        offset query int false "Row offset (default 0)"
// @Success      200 {array} TaskResponse
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/employees/{id}/tasks [get]
func (h *TaskHandler) ListByEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "Invalid employee ID format")
	if !ok {
		return
	}

	tasks, err := h.service.ListForEmployeePaginated(c.Request.Context(), employeeID, parseOffset(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// ListByEmployeeToday godoc
// @Summary      List an employee's tasks due today
// @Tags         Tasks
// @Produce      json
// @Param        id path string true "Employee ID"
// @Success      200 {array} TaskResponse
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/employees/{id}/tasks/today [get]
func (h *TaskHandler) ListByEmployeeToday(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "Invalid employee ID format")
	if !ok {
		return
	}

	tasks, err := h.service.ListForEmployeeToday(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// ListByTeam godoc
// @Summary      List a team's tasks, filtered and paginated
// @Tags         Tasks
// @Produce      json
// @Param        id path string true "Team ID"
// @Param        category query string false "Filter by category"
// @Param        status query string false "Filter by status"
// @Param        employee_id query string false "Filter by owner"
// @Param        offset query int false "Row offset (default 0)"
// @Success      200 {array} TaskResponse
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/teams/{id}/tasks [get]
func (h *TaskHandler) ListByTeam(c *gin.Context) {
	teamID, ok := parseIDParam(c, "Invalid team ID format")
	if !ok {
		return
	}

	filters := repository.TaskFilters{
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	if raw := c.Query("employee_id"); raw != "" {
		employeeID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
			return
		}
		filters.EmployeeID = &employeeID
	}

	tasks, err := h.service.ListForTeam(c.Request.Context(), teamID, filters, parseOffset(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// ListByTeamToday godoc
// @Summary      List a team's tasks due today
// @Description  Unpaginated, unlike the general team listing
// @Tags         Tasks
// @Produce      json
// @Param        id path string true "Team ID"
// @Success      200 {array} TaskResponse
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/teams/{id}/tasks/today [get]
func (h *TaskHandler) ListByTeamToday(c *gin.Context) {
	teamID, ok := parseIDParam(c, "Invalid team ID format")
	if !ok {
		return
	}

	tasks, err := h.service.ListForTeamToday(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponses(tasks))
}
