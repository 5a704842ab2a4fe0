package category

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                     string    `gorm:"not null;uniqueIndex"`
	DefaultPoints            int       `gorm:"not null;default:0"`
	IsActive                 bool      `gorm:"not null;default:true"`
	IsDocumentedConversation bool      `gorm:"not null;default:false"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (Category) TableName() string {
	return "writeup_categories"
}

type Rule struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RuleName         string    `gorm:"not null"`
	BasePoints       int       `gorm:"not null;default:0"`
	IsIncremental    bool      `gorm:"not null;default:false"`
	IncrementMinutes *int
	IncrementPoints  *int
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Rule) TableName() string {
	return "writeup_rules"
}
