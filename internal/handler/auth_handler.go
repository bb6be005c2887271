package handler

import (
	"errors"
	"net/http"

	"tasktrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service service.AuthServiceInterface
	log     *logrus.Logger
}

func NewAuthHandler(service service.AuthServiceInterface, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

// RegisterRequest представляет запрос на регистрацию сотрудника
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Password   string `json:"password" binding:"required"`
}

// AuthResponse представляет ответ с токеном и данными сотрудника
type AuthResponse struct {
	Token    string          `json:"token"`
	Employee EmployeeSummary `json:"employee"`
}

// Register godoc
// @Summary      Register a new employee
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Employee data"
// @Success      201 {object} AuthResponse
// @Failure      422 {object} map[string][]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	employee, token, err := h.service.Register(c.Request.Context(), req.Name, req.Password, req.Role)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token:    token,
		Employee: toEmployeeSummary(employee),
	})
}

// Login godoc
// @Summary      Log in with employee id and password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	employee, token, err := h.service.Login(c.Request.Context(), employeeID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		Employee: toEmployeeSummary(employee),
	})
}

// Logout godoc
// @Summary      Log out
// @Tags         Auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; nothing is stored server side.
	c.Status(http.StatusNoContent)
}
