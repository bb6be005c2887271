package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasktrack/internal/model"
)

// TaskFilters are optional equality predicates for team-scoped listings.
type TaskFilters struct {
	Category   string
	Status     string
	EmployeeID *uuid.UUID
}

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]model.Task, error)
	ListByEmployeeDueBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]model.Task, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, filters TaskFilters, offset, limit int) ([]model.Task, error)
	ListByTeamDueBetween(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]model.Task, error)
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// Update updates an existing task
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// ListByEmployee retrieves a page of an employee's tasks ordered by due
// date. The id tie-break keeps paging deterministic for equal due dates.
func (r *TaskRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("due ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// ListByEmployeeDueBetween retrieves an employee's tasks due within
// [from, to), ordered by due date.
func (r *TaskRepository) ListByEmployeeDueBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Where("employee_id = ? AND due >= ? AND due < ?", employeeID, from, to).
		Order("due ASC, id ASC").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// ListByTeam retrieves a page of tasks owned by members of the team,
// joined through the memberships table, with optional equality filters.
func (r *TaskRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, filters TaskFilters, offset, limit int) ([]model.Task, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.employee_id = tasks.employee_id").
		Where("memberships.team_id = ?", teamID)

	if filters.Category != "" {
		query = query.Where("tasks.category = ?", filters.Category)
	}
	if filters.Status != "" {
		query = query.Where("tasks.status = ?", filters.Status)
	}
	if filters.EmployeeID != nil {
		query = query.Where("tasks.employee_id = ?", *filters.EmployeeID)
	}

	var tasks []model.Task
	result := query.
		Order("tasks.due ASC, tasks.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// ListByTeamDueBetween retrieves every task owned by members of the team
// due within [from, to). Unpaginated.
func (r *TaskRepository) ListByTeamDueBetween(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.employee_id = tasks.employee_id").
		Where("memberships.team_id = ? AND tasks.due >= ? AND tasks.due < ?", teamID, from, to).
		Order("tasks.due ASC, tasks.id ASC").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}
