package writeup

import "go-writeup/internal/standing"

type CreateWriteUpRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
	RuleID     string `json:"rule_id" binding:"omitempty,uuid"`
	// IncidentDate is YYYY-MM-DD; empty means today.
	IncidentDate   string `json:"incident_date"`
	MinutesLate    *int   `json:"minutes_late" binding:"omitempty,gte=0,lte=600"`
	PointsOverride *int   `json:"points_override" binding:"omitempty,gte=0"`
	// Reason is the conversation topic for documented conversations. For
	// other categories the rule name is used.
	Reason                   string `json:"reason" binding:"max=500"`
	ManagerNotes             string `json:"manager_notes"`
	SecondaryLeadWitness     string `json:"secondary_lead_witness" binding:"max=200"`
	CorrectiveActions        string `json:"corrective_actions"`
	TeamMemberComments       string `json:"team_member_comments"`
	TeamMemberSignature      string `json:"team_member_signature" binding:"max=200"`
	LeaderSignature          string `json:"leader_signature" binding:"max=200"`
	SecondaryLeaderSignature string `json:"secondary_leader_signature" binding:"max=200"`
	SignedDate               string `json:"signed_date"`
}

type BrowseQuery struct {
	Offset int `form:"offset" binding:"gte=0"`
	Limit  int `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

type WriteUpResponse struct {
	ID                       string `json:"id"`
	EmployeeID               string `json:"employee_id"`
	EmployeeName             string `json:"employee_name,omitempty"`
	CategoryID               string `json:"category_id"`
	CategoryName             string `json:"category_name,omitempty"`
	RuleID                   string `json:"rule_id,omitempty"`
	Points                   int    `json:"points"`
	PointsOverridden         bool   `json:"points_overridden"`
	MinutesLate              *int   `json:"minutes_late,omitempty"`
	IncidentDate             string `json:"incident_date"`
	Quarter                  string `json:"quarter,omitempty"`
	Reason                   string `json:"reason"`
	ManagerNotes             string `json:"manager_notes,omitempty"`
	SecondaryLeadWitness     string `json:"secondary_lead_witness,omitempty"`
	CorrectiveActions        string `json:"corrective_actions,omitempty"`
	TeamMemberComments       string `json:"team_member_comments,omitempty"`
	TeamMemberSignature      string `json:"team_member_signature,omitempty"`
	LeaderSignature          string `json:"leader_signature,omitempty"`
	SecondaryLeaderSignature string `json:"secondary_leader_signature,omitempty"`
	SignedDate               string `json:"signed_date,omitempty"`
	CreatedBy                string `json:"created_by"`
	CreatedAt                string `json:"created_at"`
}

type StandingSnapshot struct {
	Quarter       string        `json:"quarter"`
	QuarterPoints int           `json:"quarter_points"`
	Tier          standing.Tier `json:"tier"`
	Color         string        `json:"color"`
}

type CreateWriteUpResponse struct {
	WriteUp  WriteUpResponse  `json:"writeup"`
	Standing StandingSnapshot `json:"standing"`
	Alerted  bool             `json:"alerted"`
}

type DeleteWriteUpResponse struct {
	Deleted  bool             `json:"deleted"`
	Standing StandingSnapshot `json:"standing"`
	Alerted  bool             `json:"alerted"`
}

// BrowseResult carries the cursor explicitly; NextOffset is nil on the last
// page.
type BrowseResult struct {
	Items      []WriteUpResponse `json:"items"`
	Total      int64             `json:"total"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit"`
	NextOffset *int              `json:"next_offset"`
}
