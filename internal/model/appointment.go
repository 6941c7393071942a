// File: internal/model/appointment.go
package model

import "time"

type Appointment struct {
	ID         int        `db:"id" json:"id"`
	UserID     int        `db:"user_id" json:"user_id"`
	ProviderID int        `db:"provider_id" json:"provider_id"`
	Date       time.Time  `db:"date" json:"date"`
	Slot       time.Time  `db:"slot" json:"-"`
	CanceledAt *time.Time `db:"canceled_at" json:"canceled_at"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`

	// 以下欄位僅在 join 查詢時填入
	Provider *User `db:"-" json:"provider,omitempty"`
	User     *User `db:"-" json:"user,omitempty"`
}

// Canceled 回報預約是否已取消
func (a *Appointment) Canceled() bool {
	return a.CanceledAt != nil
}
