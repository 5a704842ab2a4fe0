package standingreport

import "go-writeup/internal/standing"

type ReportResponse struct {
	EmployeeID         string `json:"employee_id"`
	EmployeeName       string `json:"employee_name"`
	UnattributedPoints int    `json:"unattributed_points"`
	standing.StandingReport
}

type StandingRow struct {
	EmployeeID    string        `json:"employee_id"`
	EmployeeName  string        `json:"employee_name"`
	QuarterPoints int           `json:"quarter_points"`
	Tier          standing.Tier `json:"tier"`
	Color         string        `json:"color"`
}

type TierOption struct {
	Tier  standing.Tier `json:"tier"`
	Color string        `json:"color"`
	Min   int           `json:"min_points"`
	Max   *int          `json:"max_points"`
}
