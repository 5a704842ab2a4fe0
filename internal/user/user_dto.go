package user

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=viewer manager admin"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=viewer manager admin"`
}

type UpdateUserStatusRequest struct {
	IsDisabled *bool `json:"is_disabled" binding:"required"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	IsDisabled bool   `json:"is_disabled"`
	CreatedAt  string `json:"created_at"`
}
