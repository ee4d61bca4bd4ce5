package services

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"alfredoptarigan/resume-screener/internal/logger"
)

type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage stores files in an S3-compatible bucket.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (StorageService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioStorage{client: client, bucket: bucket}, nil
}

func (m *minioStorage) EnsureReady(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", m.bucket, err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", m.bucket, err)
	}
	logger.Info().Str("bucket", m.bucket).Msg("storage bucket created")
	return nil
}

func (m *minioStorage) Save(ctx context.Context, filename string, src io.Reader, size int64, prefix string) (string, string, error) {
	key, err := objectKey(filename, prefix)
	if err != nil {
		return "", "", err
	}

	if _, err := m.client.PutObject(ctx, m.bucket, key, src, size, minio.PutObjectOptions{
		ContentType: "application/pdf",
	}); err != nil {
		return "", "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return key, fmt.Sprintf("%s/%s/%s", m.client.EndpointURL(), m.bucket, key), nil
}

func (m *minioStorage) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

func (m *minioStorage) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}
