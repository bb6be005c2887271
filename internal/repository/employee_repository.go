package repository

import (
	"context"
	"errors"

	"tasktrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Employee, error)
}

var _ EmployeeRepositoryInterface = (*EmployeeRepository)(nil)

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error
	return employees, err
}
