package model

import (
	"time"

	"github.com/google/uuid"
)

// Роли сотрудников
const (
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name           string    `gorm:"not null"`
	HashedPassword string    `gorm:"not null"`
	Role           string    `gorm:"not null;default:'Employee';check:role IN ('Employee', 'Admin')"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time

	Tasks []Task `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Teams []Team `gorm:"many2many:memberships"`
}

func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// ValidRole reports whether the given role is part of the two-tier model.
func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleAdmin
}
