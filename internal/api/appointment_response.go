package api

import (
	"time"

	"go-barber-api/internal/model"
)

// AppointmentSummary 預約列表中的單筆資料
// swagger:model api.AppointmentSummary
type AppointmentSummary struct {
	ID       int              `json:"id" example:"9"`
	Date     time.Time        `json:"date" example:"2025-06-05T10:00:00-03:00"`
	Provider ProviderResponse `json:"provider"`
}

// swagger:model api.AppointmentResponse
type AppointmentResponse struct {
	ID         int        `json:"id" example:"9"`
	UserID     int        `json:"user_id" example:"1"`
	ProviderID int        `json:"provider_id" example:"2"`
	Date       time.Time  `json:"date" example:"2025-06-05T10:00:00-03:00"`
	CanceledAt *time.Time `json:"canceled_at"`
	CreatedAt  time.Time  `json:"created_at" example:"2025-06-01T09:00:00-03:00"`
	UpdatedAt  time.Time  `json:"updated_at" example:"2025-06-01T09:00:00-03:00"`
}

func NewAppointmentSummary(a model.Appointment, filesURL string) AppointmentSummary {
	s := AppointmentSummary{ID: a.ID, Date: a.Date}
	if a.Provider != nil {
		s.Provider = NewProviderResponse(a.Provider, filesURL)
		// 列表只回傳 id、name、avatar
		s.Provider.Email = ""
	}
	return s
}

func NewAppointmentResponse(a *model.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		ProviderID: a.ProviderID,
		Date:       a.Date,
		CanceledAt: a.CanceledAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
