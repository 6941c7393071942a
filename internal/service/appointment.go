// File: internal/service/appointment.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-barber-api/internal/locale"
	"go-barber-api/internal/mail"
	"go-barber-api/internal/model"

	"go.uber.org/zap"
)

// PageSize 每頁預約筆數
const PageSize = 20

// 取消預約需提前的時間
const cancelLeadTime = 2 * time.Hour

// AppointmentRepository 預約資料的存取介面
type AppointmentRepository interface {
	ListByUser(ctx context.Context, userID, limit, offset int) ([]model.Appointment, error)
	HasActiveAt(ctx context.Context, providerID int, slot time.Time) (bool, error)
	Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error)
	GetByID(ctx context.Context, id int) (*model.Appointment, error)
	Cancel(ctx context.Context, a *model.Appointment, at time.Time) error
}

// UserRepository 使用者查詢介面，找不到時回傳 (nil, nil)
type UserRepository interface {
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	GetProviderByID(ctx context.Context, id int) (*model.User, error)
}

// NotificationRepository 站內通知的寫入介面
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
}

// AppointmentService 負責預約的查詢、建立與取消
type AppointmentService struct {
	Appointments  AppointmentRepository
	Users         UserRepository
	Notifications NotificationRepository
	Mailer        mail.Mailer
	Locale        locale.Locale
	// Location 時段以此時區的整點計算，nil 時使用輸入日期的時區
	Location *time.Location
	Logger   *zap.Logger
	Now      func() time.Time
}

// CreateAppointmentInput 建立預約的輸入
type CreateAppointmentInput struct {
	RequesterID int
	ProviderID  int
	Date        time.Time
}

func (s *AppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// slotStart 回傳 t 在服務時區內所屬整點，
// 時差非整小時的時區 (如 +05:30) 也以當地整點為準
func (s *AppointmentService) slotStart(t time.Time) time.Time {
	loc := s.Location
	if loc == nil {
		loc = t.Location()
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc)
}

func (s *AppointmentService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// List 回傳使用者尚未取消的預約，page < 1 視為第 1 頁
func (s *AppointmentService) List(ctx context.Context, userID, page int) ([]model.Appointment, error) {
	if page < 1 {
		page = 1
	}
	return s.Appointments.ListByUser(ctx, userID, PageSize, (page-1)*PageSize)
}

// Create 依序檢查輸入、服務提供者、時段後建立預約，並通知服務提供者
func (s *AppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (*model.Appointment, error) {
	if in.ProviderID <= 0 || in.Date.IsZero() {
		return nil, validationError(MsgValidationFails)
	}

	provider, err := s.Users.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, authorizationError(MsgOnlyProviders)
	}

	if in.ProviderID == in.RequesterID {
		return nil, authorizationError(MsgSelfAppointment)
	}

	hourStart := s.slotStart(in.Date)
	if hourStart.Before(s.now()) {
		return nil, validationError(MsgPastDate)
	}

	taken, err := s.Appointments.HasActiveAt(ctx, in.ProviderID, hourStart)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validationError(MsgDateNotAvailable)
	}

	created, err := s.Appointments.Create(ctx, &model.Appointment{
		UserID:     in.RequesterID,
		ProviderID: in.ProviderID,
		Date:       in.Date,
		Slot:       hourStart,
	})
	if errors.Is(err, model.ErrSlotTaken) {
		// 併發請求搶先寫入同一時段
		return nil, validationError(MsgDateNotAvailable)
	}
	if err != nil {
		return nil, err
	}

	if err := s.notifyProvider(ctx, created, hourStart); err != nil {
		s.logger().Error("booking notification failed",
			zap.Int("appointment_id", created.ID),
			zap.Error(err),
		)
		return nil, err
	}
	return created, nil
}

func (s *AppointmentService) notifyProvider(ctx context.Context, a *model.Appointment, hourStart time.Time) error {
	requester, err := s.Users.GetUserByID(ctx, a.UserID)
	if err != nil {
		return err
	}
	if requester == nil {
		return fmt.Errorf("requester %d not found", a.UserID)
	}
	return s.Notifications.CreateNotification(ctx, &model.Notification{
		Content: s.Locale.BookingNotice(requester.Name, s.Locale.FormatSlot(hourStart)),
		User:    a.ProviderID,
	})
}

// Cancel 取消預約並寄信通知服務提供者。
// 取消結果以資料庫為準，寄信失敗不影響回傳。
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID, requesterID int) (*model.Appointment, error) {
	a, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFoundError(MsgAppointmentNotFound)
	}

	if a.UserID != requesterID {
		return nil, authorizationError(MsgNoCancelPermission)
	}

	now := s.now()
	if a.Date.Add(-cancelLeadTime).Before(now) {
		return nil, validationError(MsgCancelWindow)
	}

	if a.Canceled() {
		return nil, validationError(MsgAlreadyCanceled)
	}

	if err := s.Appointments.Cancel(ctx, a, now); err != nil {
		if errors.Is(err, model.ErrAppointmentCanceled) {
			return nil, validationError(MsgAlreadyCanceled)
		}
		return nil, err
	}

	m := mail.CancellationMail{
		Subject: s.Locale.CancellationSubject(),
		Date:    s.Locale.FormatSlot(a.Date),
	}
	if a.Provider != nil {
		m.ProviderName = a.Provider.Name
		m.ProviderEmail = a.Provider.Email
	}
	if a.User != nil {
		m.UserName = a.User.Name
	}
	if err := s.Mailer.SendCancellation(ctx, m); err != nil {
		s.logger().Warn("cancellation mail failed",
			zap.Int("appointment_id", a.ID),
			zap.Error(err),
		)
	}
	return a, nil
}
