package service_test

import (
	"context"
	"time"

	"tasktrack/internal/model"
	"tasktrack/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Мок репозитория задач
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]model.Task, error) {
	args := m.Called(ctx, employeeID, offset, limit)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByEmployeeDueBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]model.Task, error) {
	args := m.Called(ctx, employeeID, from, to)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, filters repository.TaskFilters, offset, limit int) ([]model.Task, error) {
	args := m.Called(ctx, teamID, filters, offset, limit)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByTeamDueBetween(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]model.Task, error) {
	args := m.Called(ctx, teamID, from, to)
	return args.Get(0).([]model.Task), args.Error(1)
}

// Мок репозитория сотрудников
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	args := m.Called(ctx, id)
	employee := args.Get(0)
	if employee == nil {
		return nil, args.Error(1)
	}
	return employee.(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Employee, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Employee), args.Error(1)
}

// Мок репозитория команд
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *model.Team, initialMember *model.Employee) error {
	args := m.Called(ctx, team, initialMember)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, id)
	team := args.Get(0)
	if team == nil {
		return nil, args.Error(1)
	}
	return team.(*model.Team), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *model.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) GetMembers(ctx context.Context, teamID uuid.UUID) ([]model.Employee, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockTeamRepository) GetMemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockTeamRepository) GetTeamsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Team, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *MockTeamRepository) AddMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID) error {
	args := m.Called(ctx, teamID, employeeIDs)
	return args.Error(0)
}

func (m *MockTeamRepository) ReplaceMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID) error {
	args := m.Called(ctx, teamID, employeeIDs)
	return args.Error(0)
}
