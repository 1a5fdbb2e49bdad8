package dto

type CreateUserInput struct {
	Username string  `json:"username" form:"username" binding:"required" example:"johndoe"`
	Password string  `json:"password" form:"password" binding:"required" example:"password123"`
	Email    *string `json:"email,omitempty" form:"email" example:"user@example.com"`
	FullName *string `json:"full_name,omitempty" form:"full_name" example:"John Doe"`
	Role     *string `json:"role,omitempty" form:"role" binding:"omitempty,oneof=admin user" example:"user"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required" example:"johndoe"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

type UpdateUserInput struct {
	OldPassword *string `json:"old_password,omitempty" form:"old_password"`
	Password    *string `json:"password,omitempty" form:"password"`
	Email       *string `json:"email,omitempty" form:"email"`
	FullName    *string `json:"full_name,omitempty" form:"full_name"`
}
