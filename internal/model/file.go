// File: internal/model/file.go
package model

import "time"

// File 使用者上傳的檔案 (目前僅作為頭像使用)
type File struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Path      string    `db:"path" json:"path"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// URL 依據靜態檔案的 base URL 組出可公開存取的位址
func (f File) URL(baseURL string) string {
	return baseURL + "/files/" + f.Path
}
