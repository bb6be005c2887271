package service

import (
	"context"
	"time"

	"tasktrack/internal/apperr"
	"tasktrack/internal/model"
	"tasktrack/internal/policy"
	"tasktrack/internal/repository"

	"github.com/google/uuid"
)

// PageSize bounds every paginated listing.
const PageSize = 30

// TaskInput holds the attributes for creating a task.
type TaskInput struct {
	Title      string
	Status     string
	Category   string
	Detail     string
	Due        *time.Time
	EmployeeID uuid.UUID
}

// TaskUpdateInput holds a partial update; nil fields are left untouched.
type TaskUpdateInput struct {
	Title      *string
	Status     *string
	Category   *string
	Detail     *string
	Due        *time.Time
	EmployeeID *uuid.UUID
}

type TaskService struct {
	tasks     repository.TaskRepositoryInterface
	employees repository.EmployeeRepositoryInterface
	teams     repository.TeamRepositoryInterface
	loc       *time.Location
}

type TaskServiceInterface interface {
	Create(ctx context.Context, input TaskInput, actor *model.Employee) (*model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Update(ctx context.Context, id uuid.UUID, input TaskUpdateInput, actor *model.Employee) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID, actor *model.Employee) error
	ListForEmployeeToday(ctx context.Context, employeeID uuid.UUID) ([]model.Task, error)
	ListForEmployeePaginated(ctx context.Context, employeeID uuid.UUID, offset int) ([]model.Task, error)
	ListForTeam(ctx context.Context, teamID uuid.UUID, filters repository.TaskFilters, offset int) ([]model.Task, error)
	ListForTeamToday(ctx context.Context, teamID uuid.UUID) ([]model.Task, error)
}

var _ TaskServiceInterface = (*TaskService)(nil)

func NewTaskService(
	tasks repository.TaskRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	teams repository.TeamRepositoryInterface,
	loc *time.Location,
) *TaskService {
	if loc == nil {
		loc = time.Local
	}
	return &TaskService{
		tasks:     tasks,
		employees: employees,
		teams:     teams,
		loc:       loc,
	}
}

// Create persists a new task. Creating on behalf of another employee
// requires the Admin role; the check runs before any write.
func (s *TaskService) Create(ctx context.Context, input TaskInput, actor *model.Employee) (*model.Task, error) {
	if err := policy.CanActOnEmployee(actor, input.EmployeeID, "create tasks for another employee"); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = model.StatusPending
	}
	verr := apperr.NewValidation()
	if input.Title == "" {
		verr.Addf("title is required")
	}
	if input.EmployeeID == uuid.Nil {
		verr.Addf("employee_id is required")
	}
	if !model.ValidStatus(input.Status) {
		verr.Addf("status must be one of pending, in_progress, done")
	}
	if verr.HasViolations() {
		return nil, verr
	}

	owner, err := s.employees.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, repository.ErrEmployeeNotFound
	}

	task := &model.Task{
		ID:         uuid.New(),
		Title:      input.Title,
		Status:     input.Status,
		Category:   input.Category,
		Detail:     input.Detail,
		Due:        input.Due,
		EmployeeID: input.EmployeeID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get returns a task to any authenticated actor. Reads are intentionally
// more permissive than mutations.
func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// Update applies a partial update after checking self-or-admin against the
// task's current owner.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, input TaskUpdateInput, actor *model.Employee) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanActOnEmployee(actor, task.EmployeeID, "update this task"); err != nil {
		return nil, err
	}

	verr := apperr.NewValidation()
	if input.Title != nil && *input.Title == "" {
		verr.Addf("title must not be empty")
	}
	if input.Status != nil && !model.ValidStatus(*input.Status) {
		verr.Addf("status must be one of pending, in_progress, done")
	}
	if verr.HasViolations() {
		return nil, verr
	}

	if input.EmployeeID != nil && *input.EmployeeID != task.EmployeeID {
		newOwner, err := s.employees.GetByID(ctx, *input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if newOwner == nil {
			return nil, repository.ErrEmployeeNotFound
		}
		task.EmployeeID = *input.EmployeeID
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Category != nil {
		task.Category = *input.Category
	}
	if input.Detail != nil {
		task.Detail = *input.Detail
	}
	if input.Due != nil {
		task.Due = input.Due
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task after checking self-or-admin against its owner.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID, actor *model.Employee) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanActOnEmployee(actor, task.EmployeeID, "delete this task"); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

// ListForEmployeeToday returns the employee's tasks due within the current
// calendar day in the configured time zone, ordered by due date.
func (s *TaskService) ListForEmployeeToday(ctx context.Context, employeeID uuid.UUID) ([]model.Task, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	from, to := DayWindow(time.Now(), s.loc)
	return s.tasks.ListByEmployeeDueBetween(ctx, employeeID, from, to)
}

// ListForEmployeePaginated returns one page of the employee's tasks.
func (s *TaskService) ListForEmployeePaginated(ctx context.Context, employeeID uuid.UUID, offset int) ([]model.Task, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	return s.tasks.ListByEmployee(ctx, employeeID, offset, PageSize)
}

// ListForTeam returns one page of tasks owned by team members, with
// optional equality filters.
func (s *TaskService) ListForTeam(ctx context.Context, teamID uuid.UUID, filters repository.TaskFilters, offset int) ([]model.Task, error) {
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	return s.tasks.ListByTeam(ctx, teamID, filters, offset, PageSize)
}

// ListForTeamToday returns every task owned by team members due within the
// current calendar day. Unlike ListForTeam this is not paginated.
func (s *TaskService) ListForTeamToday(ctx context.Context, teamID uuid.UUID) ([]model.Task, error) {
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}
	from, to := DayWindow(time.Now(), s.loc)
	return s.tasks.ListByTeamDueBetween(ctx, teamID, from, to)
}

func (s *TaskService) requireEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return repository.ErrEmployeeNotFound
	}
	return nil
}

func (s *TaskService) requireTeam(ctx context.Context, id uuid.UUID) error {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if team == nil {
		return repository.ErrTeamNotFound
	}
	return nil
}

// DayWindow returns the calendar day containing t in the given location:
// start of day inclusive to start of the next day exclusive.
func DayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}
