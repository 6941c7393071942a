// File: internal/service/errors.go
package service

import "errors"

// ErrorKind 對應 HTTP 層的狀態碼
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuthorization
	KindNotFound
)

// Error 為預約流程中可預期的業務錯誤，Message 直接回傳給客戶端
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func validationError(msg string) error    { return &Error{Kind: KindValidation, Message: msg} }
func authorizationError(msg string) error { return &Error{Kind: KindAuthorization, Message: msg} }
func notFoundError(msg string) error      { return &Error{Kind: KindNotFound, Message: msg} }

// 對外的錯誤訊息
const (
	MsgValidationFails     = "Validation Fails"
	MsgOnlyProviders       = "You can only create appointments with providers"
	MsgSelfAppointment     = "You can not create an appointment with yourself!"
	MsgPastDate            = "Past dates are not permitted"
	MsgDateNotAvailable    = "Appointment date is not available"
	MsgAppointmentNotFound = "Appointment not found"
	MsgNoCancelPermission  = "You don't have permission to cancel this appointment."
	MsgCancelWindow        = "You can only cancel appointments 2 hours in advance."
	MsgAlreadyCanceled     = "Appointment already canceled!"
)

// AsError 取出 *Error，不是業務錯誤時回傳 nil
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
