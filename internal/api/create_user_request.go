package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"Diego Fernandes"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"diego@gobarber.com"`
	Password string `json:"password" form:"password" validate:"required,min=6" example:"123456"`
	Provider bool   `json:"provider" form:"provider" example:"true"`
}
