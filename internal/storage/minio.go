package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"jobhive/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore is the production FileStore backed by a MinIO (or any
// S3-compatible) bucket.
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore initializes the MinIO client and ensures the target bucket exists.
func NewMinIOStore(cfg *config.Config) (*MinIOStore, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
		Region: cfg.MinIORegion,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.MinIOBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{Region: cfg.MinIORegion}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.MinIOBucket, err)
		}
	}

	return &MinIOStore{client: client, bucket: cfg.MinIOBucket}, nil
}

// Store uploads the file under a generated key and returns the key.
func (s *MinIOStore) Store(ctx context.Context, prefix string, upload *Upload) (string, error) {
	key := ObjectKey(prefix, upload.Filename)
	opts := minio.PutObjectOptions{ContentType: upload.ContentType}
	if _, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(upload.Content), upload.Size(), opts); err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	return key, nil
}

// Delete removes the object. A missing key is not an error: the row pointing
// at it is already being replaced or removed.
func (s *MinIOStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && !IsNoSuchKey(err) {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}
