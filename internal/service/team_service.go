package service

import (
	"context"
	"strings"

	"tasktrack/internal/apperr"
	"tasktrack/internal/model"
	"tasktrack/internal/policy"
	"tasktrack/internal/repository"

	"github.com/google/uuid"
)

// Membership update modes. Additive is the default: it only ever grows the
// roster, which keeps a forgotten mode parameter from mass-removing
// members.
const (
	ModeAdditive = "additive"
	ModeReplace  = "replace"
)

type TeamService struct {
	teams      repository.TeamRepositoryInterface
	employees  repository.EmployeeRepositoryInterface
	autoEnroll bool
}

type TeamServiceInterface interface {
	Create(ctx context.Context, name string, actor *model.Employee) (*model.Team, error)
	Update(ctx context.Context, id uuid.UUID, name string, actor *model.Employee) (*model.Team, error)
	Delete(ctx context.Context, id uuid.UUID, actor *model.Employee) error
	Members(ctx context.Context, teamID uuid.UUID) ([]model.Employee, error)
	TeamsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Team, error)
	UpdateMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID, mode string, actor *model.Employee) ([]model.Employee, error)
}

var _ TeamServiceInterface = (*TeamService)(nil)

func NewTeamService(
	teams repository.TeamRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	autoEnroll bool,
) *TeamService {
	return &TeamService{
		teams:      teams,
		employees:  employees,
		autoEnroll: autoEnroll,
	}
}

// Create persists a new team. Admin only. When auto-enroll is configured
// the creating admin becomes the first member.
func (s *TeamService) Create(ctx context.Context, name string, actor *model.Employee) (*model.Team, error) {
	if err := policy.RequireAdmin(actor, "create teams"); err != nil {
		return nil, err
	}
	if err := validateTeamName(name); err != nil {
		return nil, err
	}

	team := &model.Team{
		ID:   uuid.New(),
		Name: name,
	}
	var initialMember *model.Employee
	if s.autoEnroll {
		initialMember = actor
	}
	if err := s.teams.Create(ctx, team, initialMember); err != nil {
		return nil, err
	}
	return team, nil
}

// Update renames a team. Admin only.
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, name string, actor *model.Employee) (*model.Team, error) {
	if err := policy.RequireAdmin(actor, "update teams"); err != nil {
		return nil, err
	}
	if err := validateTeamName(name); err != nil {
		return nil, err
	}

	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, repository.ErrTeamNotFound
	}

	team.Name = name
	if err := s.teams.Update(ctx, team); err != nil {
		return nil, err
	}

	members, err := s.teams.GetMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Employees = members
	return team, nil
}

// Delete removes a team and its memberships. Admin only.
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID, actor *model.Employee) error {
	if err := policy.RequireAdmin(actor, "delete teams"); err != nil {
		return err
	}
	return s.teams.Delete(ctx, id)
}

// Members returns the team's roster.
func (s *TeamService) Members(ctx context.Context, teamID uuid.UUID) ([]model.Employee, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, repository.ErrTeamNotFound
	}
	return s.teams.GetMembers(ctx, teamID)
}

// TeamsForEmployee returns every team the employee belongs to.
func (s *TeamService) TeamsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Team, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, repository.ErrEmployeeNotFound
	}
	return s.teams.GetTeamsForEmployee(ctx, employeeID)
}

// UpdateMembers mutates the roster. Admin only. In replace mode the roster
// becomes exactly the given set (an empty set clears it); in additive mode
// ids already on the roster are skipped and an empty set is a validation
// failure. Every referenced employee must resolve before anything is
// written.
func (s *TeamService) UpdateMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID, mode string, actor *model.Employee) ([]model.Employee, error) {
	if err := policy.RequireAdmin(actor, "manage team members"); err != nil {
		return nil, err
	}

	if mode == "" {
		mode = ModeAdditive
	}
	if mode != ModeAdditive && mode != ModeReplace {
		verr := apperr.NewValidation()
		verr.Addf("mode must be additive or replace")
		return nil, verr
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, repository.ErrTeamNotFound
	}

	employeeIDs = dedupe(employeeIDs)

	switch mode {
	case ModeReplace:
		if len(employeeIDs) > 0 {
			if err := s.requireAllResolve(ctx, employeeIDs); err != nil {
				return nil, err
			}
		}
		if err := s.teams.ReplaceMembers(ctx, teamID, employeeIDs); err != nil {
			return nil, err
		}
	case ModeAdditive:
		if len(employeeIDs) == 0 {
			verr := apperr.NewValidation()
			verr.Addf("employee_ids is required and must not be empty")
			return nil, verr
		}
		current, err := s.teams.GetMemberIDs(ctx, teamID)
		if err != nil {
			return nil, err
		}
		newIDs := subtract(employeeIDs, current)
		if len(newIDs) > 0 {
			if err := s.requireAllResolve(ctx, newIDs); err != nil {
				return nil, err
			}
			if err := s.teams.AddMembers(ctx, teamID, newIDs); err != nil {
				return nil, err
			}
		}
	}

	return s.teams.GetMembers(ctx, teamID)
}

// requireAllResolve fails with NotFound naming every id that has no
// employee row.
func (s *TeamService) requireAllResolve(ctx context.Context, ids []uuid.UUID) error {
	employees, err := s.employees.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(employees) == len(ids) {
		return nil
	}

	found := make(map[uuid.UUID]bool, len(employees))
	for _, employee := range employees {
		found[employee.ID] = true
	}
	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id.String())
		}
	}
	return apperr.NotFound("employees not found: %s", strings.Join(missing, ", "))
}

func validateTeamName(name string) error {
	if strings.TrimSpace(name) == "" {
		verr := apperr.NewValidation()
		verr.Addf("name is required")
		return verr
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

func subtract(ids, exclude []uuid.UUID) []uuid.UUID {
	excluded := make(map[uuid.UUID]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !excluded[id] {
			result = append(result, id)
		}
	}
	return result
}
