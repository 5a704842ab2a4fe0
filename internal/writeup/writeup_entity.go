package writeup

import (
	"time"

	"go-writeup/internal/standing"

	"github.com/google/uuid"
)

type WriteUp struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID               uuid.UUID  `gorm:"type:uuid;not null"`
	RuleID                   *uuid.UUID `gorm:"type:uuid"`
	Points                   int        `gorm:"not null;default:0"`
	IncidentDate             *time.Time `gorm:"type:date"`
	MinutesLate              *int
	PointsOverridden         bool `gorm:"not null;default:false"`
	Reason                   string
	ManagerNotes             string
	SecondaryLeadWitness     string
	CorrectiveActions        string
	TeamMemberComments       string
	TeamMemberSignature      string
	LeaderSignature          string
	SecondaryLeaderSignature string
	SignedDate               *time.Time `gorm:"type:date"`
	CreatedBy                string
	CreatedAt                time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;-:migration"`
	Category *CategoryRef `gorm:"foreignKey:CategoryID;references:ID;-:migration"`
}

func (WriteUp) TableName() string {
	return "writeups"
}

func (w WriteUp) StandingPoints() int {
	return w.Points
}

func (w WriteUp) IncidentDay() (time.Time, bool) {
	return standing.ParseIncidentDate(w.IncidentDate)
}

// EmployeeRef and CategoryRef are read-only projections for preloads.
type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (EmployeeRef) TableName() string {
	return "employees"
}

type CategoryRef struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                     string
	IsDocumentedConversation bool
}

func (CategoryRef) TableName() string {
	return "writeup_categories"
}
