package model

import (
	"time"

	"github.com/google/uuid"
)

// Membership представляет связь между сотрудником и командой
type Membership struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_employee_team"`
	TeamID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_employee_team"`
	JoinedAt   time.Time `gorm:"autoCreateTime"`

	Employee Employee `gorm:"foreignKey:EmployeeID"`
	Team     Team     `gorm:"foreignKey:TeamID"`
}
