// File: internal/model/user.go
package model

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Provider     bool      `db:"provider" json:"provider"`
	AvatarID     *int      `db:"avatar_id" json:"avatar_id,omitempty"`
	Avatar       *File     `db:"-" json:"avatar,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
