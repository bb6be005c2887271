package handler

import (
	"errors"
	"net/http"
	"strconv"

	"tasktrack/internal/apperr"
	"tasktrack/internal/middleware"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EmployeeSummary представляет краткие данные сотрудника
type EmployeeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func toEmployeeSummary(employee *model.Employee) EmployeeSummary {
	return EmployeeSummary{
		ID:   employee.ID.String(),
		Name: employee.Name,
		Role: employee.Role,
	}
}

func toEmployeeSummaries(employees []model.Employee) []EmployeeSummary {
	summaries := make([]EmployeeSummary, 0, len(employees))
	for i := range employees {
		summaries = append(summaries, toEmployeeSummary(&employees[i]))
	}
	return summaries
}

// respondError maps the error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is logged with full detail and surfaced as an
// opaque 500.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	var verr *apperr.ValidationError
	var ferr *apperr.ForbiddenError
	var nferr *apperr.NotFoundError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Messages()})
	case errors.As(err, &ferr):
		c.JSON(http.StatusForbidden, gin.H{"error": ferr.Reason})
	case errors.As(err, &nferr):
		c.JSON(http.StatusNotFound, gin.H{"error": nferr.Error()})
	case errors.Is(err, repository.ErrEmployeeNotFound),
		errors.Is(err, repository.ErrTeamNotFound),
		errors.Is(err, repository.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseOffset reads the offset query parameter; absent, non-numeric or
// negative values fall back to 0.
func parseOffset(c *gin.Context) int {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// parseIDParam reads the id path parameter as a UUID.
func parseIDParam(c *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return uuid.Nil, false
	}
	return id, true
}

// currentActor fetches the employee resolved by the auth middleware.
func currentActor(c *gin.Context) (*model.Employee, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not Authorized"})
		return nil, false
	}
	return actor, true
}
