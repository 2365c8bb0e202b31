package media

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage keeps uploads in an object-store bucket, for deployments where
// the app container has no durable disk.
type MinioStorage struct {
	client     *minio.Client
	bucketName string
	urlPrefix  string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLPrefix string
}

var _ Storage = &MinioStorage{}

func NewMinioStorage(cfg *MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &MinioStorage{
		client:     client,
		bucketName: cfg.Bucket,
		urlPrefix:  strings.TrimSuffix(cfg.URLPrefix, "/"),
	}, nil
}

func (s *MinioStorage) Store(ctx context.Context, r io.Reader, originalName string) (*Object, error) {
	objectName := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), sanitizeFilename(originalName))

	_, err := s.client.PutObject(ctx, s.bucketName, objectName, r, -1, minio.PutObjectOptions{
		ContentType: contentTypeByName(originalName),
	})
	if err != nil {
		return nil, fmt.Errorf("upload to minio: %w", err)
	}

	return &Object{
		Filename: originalName,
		Path:     objectName,
		URL:      s.URL(objectName),
	}, nil
}

func (s *MinioStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	object, err := s.client.GetObject(ctx, s.bucketName, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get from minio: %w", err)
	}
	return object, nil
}

func (s *MinioStorage) Delete(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucketName, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete from minio: %w", err)
	}
	return nil
}

func (s *MinioStorage) URL(path string) string {
	return fmt.Sprintf("%s/%s/%s", s.urlPrefix, s.bucketName, path)
}
