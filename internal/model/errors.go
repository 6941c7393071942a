// File: internal/model/errors.go
package model

import "errors"

// 儲存層回報的資料衝突，由 service 轉成對外的錯誤訊息
var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrSlotTaken           = errors.New("provider slot already booked")
	ErrAppointmentCanceled = errors.New("appointment already canceled")
)
