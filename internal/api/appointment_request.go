package api

// swagger:model api.CreateAppointmentRequest
type CreateAppointmentRequest struct {
	ProviderID int    `json:"provider_id" form:"provider_id" validate:"required" example:"2"`
	Date       string `json:"date" form:"date" validate:"required" example:"2025-06-05T10:00:00-03:00"`
}
