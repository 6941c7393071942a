package api

// swagger:model api.SessionRequest
type SessionRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"diego@gobarber.com"`
	Password string `json:"password" form:"password" validate:"required" example:"123456"`
}
