package category

type CreateCategoryRequest struct {
	Name                     string `json:"name" binding:"required,max=200"`
	DefaultPoints            int    `json:"default_points" binding:"gte=0"`
	IsDocumentedConversation bool   `json:"is_documented_conversation"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type CreateRuleRequest struct {
	RuleName         string  `json:"rule_name" binding:"required,max=300"`
	BasePoints       int     `json:"base_points" binding:"gte=0"`
	IsIncremental    bool    `json:"is_incremental"`
	IncrementMinutes *int    `json:"increment_minutes" binding:"omitempty,gte=1"`
	IncrementPoints  *int    `json:"increment_points" binding:"omitempty,gte=0"`
	Notes            *string `json:"notes"`
}

type CategoryResponse struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	DefaultPoints            int    `json:"default_points"`
	IsActive                 bool   `json:"is_active"`
	IsDocumentedConversation bool   `json:"is_documented_conversation"`
}

type RuleResponse struct {
	ID               string `json:"id"`
	CategoryID       string `json:"category_id"`
	RuleName         string `json:"rule_name"`
	BasePoints       int    `json:"base_points"`
	IsIncremental    bool   `json:"is_incremental"`
	IncrementMinutes *int   `json:"increment_minutes,omitempty"`
	IncrementPoints  *int   `json:"increment_points,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Handbook         string `json:"handbook,omitempty"`
}
