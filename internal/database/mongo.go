// File: internal/database/mongo.go
package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient 為 *mongo.Client 的子集合
type MongoClient interface {
	Database(name string, opts ...*options.DatabaseOptions) *mongo.Database
	Disconnect(ctx context.Context) error
}

var mongoConnect = mongo.Connect

// NewMongoClient 連線 MongoDB，並在 5 秒內完成 Ping 測試
func NewMongoClient(ctx context.Context, url string) (MongoClient, error) {
	client, err := mongoConnect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}
