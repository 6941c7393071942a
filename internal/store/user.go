package store

import (
	"context"
	"errors"
	"fmt"

	"go-barber-api/internal/database"
	"go-barber-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, name, email, password_hash, provider, avatar_id, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Provider,
		&u.AvatarID,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByID 依 ID 取得使用者，不存在時回傳包裝過的 pgx.ErrNoRows
func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	))
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByEmail 依 Email 取得使用者，不存在時回傳 (nil, nil)
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// GetProviderByID 只回傳 provider = true 的帳號，不存在時回傳 (nil, nil)
func GetProviderByID(ctx context.Context, db database.DB, providerID int) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND provider = TRUE`,
		providerID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetProviderByID: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, provider)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Provider,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateUser: %w", model.ErrEmailTaken)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// ListProviders 列出所有服務者與其頭像，依姓名排序
func ListProviders(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT u.id, u.name, u.email, f.id, f.name, f.path
		 FROM users u
		 LEFT JOIN files f ON f.id = u.avatar_id
		 WHERE u.provider = TRUE
		 ORDER BY u.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProviders: %w", err)
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var (
			u        model.User
			fileID   *int
			fileName *string
			filePath *string
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &fileID, &fileName, &filePath); err != nil {
			return nil, fmt.Errorf("ListProviders: %w", err)
		}
		u.Provider = true
		u.Avatar = avatar(fileID, fileName, filePath)
		if u.Avatar != nil {
			u.AvatarID = &u.Avatar.ID
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProviders: %w", err)
	}
	return out, nil
}

func avatar(id *int, name, path *string) *model.File {
	if id == nil {
		return nil
	}
	f := &model.File{ID: *id}
	if name != nil {
		f.Name = *name
	}
	if path != nil {
		f.Path = *path
	}
	return f
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Users 將上述函式綁定到同一個 DB，供 service 以介面注入
type Users struct {
	DB database.DB
}

// GetUserByID 不存在時回傳 (nil, nil)，與 GetProviderByID 一致
func (u Users) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	user, err := GetUserByID(ctx, u.DB, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (u Users) GetProviderByID(ctx context.Context, id int) (*model.User, error) {
	return GetProviderByID(ctx, u.DB, id)
}
