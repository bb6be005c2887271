package service

import (
	"context"
	"errors"
	"time"

	"tasktrack/internal/apperr"
	"tasktrack/internal/auth"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both an unknown employee id and a
// wrong password, so login failures do not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	employees repository.EmployeeRepositoryInterface
	jwtSecret string
	tokenTTL  time.Duration
}

type AuthServiceInterface interface {
	Register(ctx context.Context, name, password, role string) (*model.Employee, string, error)
	Login(ctx context.Context, employeeID uuid.UUID, password string) (*model.Employee, string, error)
}

var _ AuthServiceInterface = (*AuthService)(nil)

func NewAuthService(employees repository.EmployeeRepositoryInterface, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		employees: employees,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates an employee and returns it with a fresh token. Role
// defaults to Employee and is immutable after registration; there is no
// promote operation anywhere in the API.
func (s *AuthService) Register(ctx context.Context, name, password, role string) (*model.Employee, string, error) {
	if role == "" {
		role = model.RoleEmployee
	}
	verr := apperr.NewValidation()
	if name == "" {
		verr.Addf("name is required")
	}
	if len(password) < 6 {
		verr.Addf("password must be at least 6 characters")
	}
	if !model.ValidRole(role) {
		verr.Addf("role must be Employee or Admin")
	}
	if verr.HasViolations() {
		return nil, "", verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	employee := &model.Employee{
		ID:             uuid.New(),
		Name:           name,
		HashedPassword: string(hash),
		Role:           role,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(s.jwtSecret, employee.ID, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return employee, token, nil
}

// Login verifies the password of the given employee and returns a token.
func (s *AuthService) Login(ctx context.Context, employeeID uuid.UUID, password string) (*model.Employee, string, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, "", err
	}
	if employee == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.HashedPassword), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.jwtSecret, employee.ID, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return employee, token, nil
}
