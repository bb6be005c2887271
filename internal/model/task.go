package model

import (
	"time"

	"github.com/google/uuid"
)

// Статусы задач
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

type Task struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title      string    `gorm:"not null"`
	Status     string    `gorm:"not null;default:'pending';check:status IN ('pending', 'in_progress', 'done')"`
	Category   string
	Detail     string     `gorm:"type:text"`
	Due        *time.Time `gorm:"index"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee Employee `gorm:"foreignKey:EmployeeID"`
}

// ValidStatus reports whether the given status is part of the enumeration.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}
