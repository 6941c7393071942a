package store

import (
	"context"
	"fmt"

	"go-barber-api/internal/database"
	"go-barber-api/internal/model"
)

// CreateFile 新增檔案紀錄，回填 id 與時間欄位
func CreateFile(ctx context.Context, db database.DB, f *model.File) (*model.File, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO files (name, path)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		f.Name,
		f.Path,
	)
	if err := row.Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateFile: %w", err)
	}
	return f, nil
}

// SetUserAvatar 將檔案設為使用者頭像
func SetUserAvatar(ctx context.Context, db database.DB, userID, fileID int) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET avatar_id = $1, updated_at = NOW() WHERE id = $2`,
		fileID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("SetUserAvatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("SetUserAvatar: user %d not found", userID)
	}
	return nil
}
