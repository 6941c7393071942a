package store

import (
	"context"
	"fmt"
	"time"

	"go-barber-api/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationsCollection = "notifications"

// notificationCollection 為 *mongo.Collection 的子集合，測試時以假物件替換
type notificationCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

var timeNow = time.Now

// Notifications 將站內通知寫入 MongoDB
type Notifications struct {
	Collection notificationCollection
}

func NewNotifications(db *mongo.Database) Notifications {
	return Notifications{Collection: db.Collection(notificationsCollection)}
}

func (n Notifications) CreateNotification(ctx context.Context, notification *model.Notification) error {
	now := timeNow()
	notification.CreatedAt = now
	notification.UpdatedAt = now

	res, err := n.Collection.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("CreateNotification: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		notification.ID = id
	}
	return nil
}
