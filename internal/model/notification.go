// File: internal/model/notification.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification 存放於 MongoDB 的站內通知，與關聯式資料無外鍵關係
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	User      int                `bson:"user" json:"user"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
