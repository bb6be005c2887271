package repository

import (
	"context"
	"errors"

	"tasktrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepository struct {
	db *gorm.DB
}

type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *model.Team, initialMember *model.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error)
	Update(ctx context.Context, team *model.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetMembers(ctx context.Context, teamID uuid.UUID) ([]model.Employee, error)
	GetMemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error)
	GetTeamsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Team, error)
	AddMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID) error
	ReplaceMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID) error
}

var _ TeamRepositoryInterface = (*TeamRepository)(nil)

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create persists a team and, when initialMember is set, enrolls that
// employee in the same transaction.
func (r *TeamRepository) Create(ctx context.Context, team *model.Team, initialMember *model.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		if initialMember != nil {
			if err := insertMembership(tx, team.ID, initialMember.ID); err != nil {
				return err
			}
			team.Employees = []model.Employee{*initialMember}
		}
		return nil
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *model.Team) error {
	result := r.db.WithContext(ctx).Save(team)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

// Delete removes the team and its membership rows atomically.
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Team{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTeamNotFound
		}
		return nil
	})
}

func (r *TeamRepository) GetMembers(ctx context.Context, teamID uuid.UUID) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.employee_id = employees.id").
		Where("memberships.team_id = ?", teamID).
		Order("memberships.joined_at").
		Find(&employees).Error
	return employees, err
}

func (r *TeamRepository) GetMemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("team_id = ?", teamID).
		Pluck("employee_id", &ids).Error
	return ids, err
}

func (r *TeamRepository) GetTeamsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.team_id = teams.id").
		Where("memberships.employee_id = ?", employeeID).
		Order("memberships.joined_at").
		Find(&teams).Error
	return teams, err
}

// AddMembers enrolls the given employees, skipping pairs that already
// exist. All inserts happen in one transaction.
func (r *TeamRepository) AddMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, employeeID := range employeeIDs {
			if err := insertMembership(tx, teamID, employeeID); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceMembers makes the roster exactly the given set: prior members are
// cleared and the new set inserted in one transaction.
func (r *TeamRepository) ReplaceMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&model.Membership{}).Error; err != nil {
			return err
		}
		for _, employeeID := range employeeIDs {
			if err := insertMembership(tx, teamID, employeeID); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertMembership(tx *gorm.DB, teamID, employeeID uuid.UUID) error {
	return tx.Exec(
		"INSERT INTO memberships (employee_id, team_id, joined_at) VALUES (?, ?, NOW()) ON CONFLICT DO NOTHING",
		employeeID, teamID,
	).Error
}
