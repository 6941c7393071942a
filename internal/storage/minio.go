// File: internal/storage/minio.go
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// objectPutter 為 *minio.Client 的子集合，測試時以假物件替換
type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

var minioNew = func(endpoint string, opts *minio.Options) (objectPutter, error) {
	return minio.New(endpoint, opts)
}

var newObjectName = func(original string) string {
	return uuid.NewString() + strings.ToLower(path.Ext(original))
}

// Uploader 把上傳的檔案存進 MinIO bucket
type Uploader struct {
	Client objectPutter
	Bucket string
}

// NewMinioUploader 連線到 MinIO，bucket 不存在時自動建立
func NewMinioUploader(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Uploader, error) {
	client, err := minioNew(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket %s: %w", bucket, err)
		}
	}
	return &Uploader{Client: client, Bucket: bucket}, nil
}

// Upload 以隨機檔名存入物件，回傳物件路徑
func (u *Uploader) Upload(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error) {
	name := newObjectName(originalName)
	if _, err := u.Client.PutObject(ctx, u.Bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("upload %s: %w", originalName, err)
	}
	return name, nil
}
