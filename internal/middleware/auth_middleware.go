package middleware

import (
	"context"
	"net/http"
	"strings"

	"tasktrack/internal/auth"
	"tasktrack/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// EmployeeIDKey is the gin context key holding the authenticated employee's id
	EmployeeIDKey = "employee_id"
	// ActorKey is the gin context key holding the resolved employee record
	ActorKey = "actor"
)

// EmployeeFinder resolves a token subject to a live employee record.
type EmployeeFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
}

// JWTAuthMiddleware validates the bearer token and resolves the acting
// employee for the request. Missing header, wrong scheme, invalid or
// expired token and a subject with no employee row all abort with the same
// 401 body, so the response never explains which check failed.
func JWTAuthMiddleware(jwtSecret string, employees EmployeeFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}

		employeeID, err := auth.ParseToken(jwtSecret, parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		employee, err := employees.GetByID(c.Request.Context(), employeeID)
		if err != nil || employee == nil {
			unauthorized(c)
			return
		}

		c.Set(EmployeeIDKey, employee.ID)
		c.Set(ActorKey, employee)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not Authorized"})
}

// CurrentActor returns the employee resolved by JWTAuthMiddleware.
func CurrentActor(c *gin.Context) (*model.Employee, bool) {
	value, exists := c.Get(ActorKey)
	if !exists {
		return nil, false
	}
	actor, ok := value.(*model.Employee)
	if !ok || actor == nil {
		return nil, false
	}
	return actor, true
}
