package handler_test

import (
	"context"
	"io"

	"tasktrack/internal/middleware"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
	"tasktrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// withActor ставит сотрудника в контекст вместо настоящего middleware
func withActor(actor *model.Employee) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.EmployeeIDKey, actor.ID)
		c.Set(middleware.ActorKey, actor)
		c.Next()
	}
}

// MockTaskService мок сервиса задач
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, input service.TaskInput, actor *model.Employee) (*model.Task, error) {
	args := m.Called(ctx, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id uuid.UUID, input service.TaskUpdateInput, actor *model.Employee) (*model.Task, error) {
	args := m.Called(ctx, id, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id uuid.UUID, actor *model.Employee) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func (m *MockTaskService) ListForEmployeeToday(ctx context.Context, employeeID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) ListForEmployeePaginated(ctx context.Context, employeeID uuid.UUID, offset int) ([]model.Task, error) {
	args := m.Called(ctx, employeeID, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) ListForTeam(ctx context.Context, teamID uuid.UUID, filters repository.TaskFilters, offset int) ([]model.Task, error) {
	args := m.Called(ctx, teamID, filters, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) ListForTeamToday(ctx context.Context, teamID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

// MockTeamService мок сервиса команд
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) Create(ctx context.Context, name string, actor *model.Employee) (*model.Team, error) {
	args := m.Called(ctx, name, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamService) Update(ctx context.Context, id uuid.UUID, name string, actor *model.Employee) (*model.Team, error) {
	args := m.Called(ctx, id, name, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamService) Delete(ctx context.Context, id uuid.UUID, actor *model.Employee) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func (m *MockTeamService) Members(ctx context.Context, teamID uuid.UUID) ([]model.Employee, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockTeamService) TeamsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Team, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *MockTeamService) UpdateMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID, mode string, actor *model.Employee) ([]model.Employee, error) {
	args := m.Called(ctx, teamID, employeeIDs, mode, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

// MockAuthService мок сервиса аутентификации
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, password, role string) (*model.Employee, string, error) {
	args := m.Called(ctx, name, password, role)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Employee), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, employeeID uuid.UUID, password string) (*model.Employee, string, error) {
	args := m.Called(ctx, employeeID, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Employee), args.String(1), args.Error(2)
}
