package employee

type CreateEmployeeRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// ListFilter narrows GetAll. Search is a case-insensitive name substring.
type ListFilter struct {
	Search          string
	IncludeInactive bool
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}
