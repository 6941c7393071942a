package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-barber-api/internal/database"
	"go-barber-api/internal/model"

	"github.com/jackc/pgx/v5"
)

// ListAppointmentsByUser 回傳使用者未取消的預約，依日期遞增並分頁
// 每筆只帶 id、date 與 provider (含頭像)
func ListAppointmentsByUser(ctx context.Context, db database.DB, userID, limit, offset int) ([]model.Appointment, error) {
	rows, err := db.Query(ctx,
		`SELECT a.id, a.date, p.id, p.name, f.id, f.name, f.path
		 FROM appointments a
		 JOIN users p ON p.id = a.provider_id
		 LEFT JOIN files f ON f.id = p.avatar_id
		 WHERE a.user_id = $1 AND a.canceled_at IS NULL
		 ORDER BY a.date, a.id
		 LIMIT $2 OFFSET $3`,
		userID,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAppointmentsByUser: %w", err)
	}
	defer rows.Close()

	out := []model.Appointment{}
	for rows.Next() {
		var (
			a        model.Appointment
			p        model.User
			fileID   *int
			fileName *string
			filePath *string
		)
		if err := rows.Scan(&a.ID, &a.Date, &p.ID, &p.Name, &fileID, &fileName, &filePath); err != nil {
			return nil, fmt.Errorf("ListAppointmentsByUser: %w", err)
		}
		p.Avatar = avatar(fileID, fileName, filePath)
		a.UserID = userID
		a.ProviderID = p.ID
		a.Provider = &p
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAppointmentsByUser: %w", err)
	}
	return out, nil
}

// HasActiveAppointmentAt 檢查服務者在該時段是否已有未取消的預約
func HasActiveAppointmentAt(ctx context.Context, db database.DB, providerID int, slot time.Time) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE provider_id = $1
			  AND slot = $2
			  AND canceled_at IS NULL
		)`,
		providerID,
		slot,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("HasActiveAppointmentAt: %w", err)
	}
	return exists, nil
}

// CreateAppointment 寫入預約；同時段的唯一索引衝突回傳 model.ErrSlotTaken
func CreateAppointment(ctx context.Context, db database.DB, a *model.Appointment) (*model.Appointment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO appointments (user_id, provider_id, date, slot)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		a.UserID,
		a.ProviderID,
		a.Date,
		a.Slot,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateAppointment: %w", model.ErrSlotTaken)
		}
		return nil, fmt.Errorf("CreateAppointment: %w", err)
	}
	return a, nil
}

// GetAppointmentByID 取得預約與 provider(name, email)、user(name)，不存在時回傳 (nil, nil)
func GetAppointmentByID(ctx context.Context, db database.DB, id int) (*model.Appointment, error) {
	a := &model.Appointment{Provider: &model.User{}, User: &model.User{}}
	err := db.QueryRow(ctx,
		`SELECT a.id, a.user_id, a.provider_id, a.date, a.slot, a.canceled_at, a.created_at, a.updated_at,
		        p.name, p.email, u.name
		 FROM appointments a
		 JOIN users p ON p.id = a.provider_id
		 JOIN users u ON u.id = a.user_id
		 WHERE a.id = $1`,
		id,
	).Scan(
		&a.ID,
		&a.UserID,
		&a.ProviderID,
		&a.Date,
		&a.Slot,
		&a.CanceledAt,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.Provider.Name,
		&a.Provider.Email,
		&a.User.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetAppointmentByID: %w", err)
	}
	a.Provider.ID = a.ProviderID
	a.User.ID = a.UserID
	return a, nil
}

// CancelAppointment 設定 canceled_at；只更新尚未取消的預約，
// 已取消時回傳 model.ErrAppointmentCanceled
func CancelAppointment(ctx context.Context, db database.DB, a *model.Appointment, canceledAt time.Time) error {
	err := db.QueryRow(ctx,
		`UPDATE appointments
		 SET canceled_at = $2, updated_at = NOW()
		 WHERE id = $1 AND canceled_at IS NULL
		 RETURNING updated_at`,
		a.ID,
		canceledAt,
	).Scan(&a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("CancelAppointment: %w", model.ErrAppointmentCanceled)
	}
	if err != nil {
		return fmt.Errorf("CancelAppointment: %w", err)
	}
	a.CanceledAt = &canceledAt
	return nil
}

// Appointments 將預約相關函式綁定到同一個 DB
type Appointments struct {
	DB database.DB
}

func (s Appointments) ListByUser(ctx context.Context, userID, limit, offset int) ([]model.Appointment, error) {
	return ListAppointmentsByUser(ctx, s.DB, userID, limit, offset)
}

func (s Appointments) HasActiveAt(ctx context.Context, providerID int, slot time.Time) (bool, error) {
	return HasActiveAppointmentAt(ctx, s.DB, providerID, slot)
}

func (s Appointments) Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	return CreateAppointment(ctx, s.DB, a)
}

func (s Appointments) GetByID(ctx context.Context, id int) (*model.Appointment, error) {
	return GetAppointmentByID(ctx, s.DB, id)
}

func (s Appointments) Cancel(ctx context.Context, a *model.Appointment, at time.Time) error {
	return CancelAppointment(ctx, s.DB, a, at)
}
