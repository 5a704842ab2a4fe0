package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Status    string    `gorm:"not null;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
