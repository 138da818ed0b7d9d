package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"philatelysamaaj/internal/domain/service"
	"philatelysamaaj/pkg/logger"
)

const publicHost = "https://storage.googleapis.com"

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

var _ service.FileUploadService = (*CloudStorageClient)(nil)

func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	storageClient := &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}

	if err := storageClient.setBucketCORS(ctx); err != nil {
		logger.Warn("failed to set bucket CORS configuration: %v", err)
	}

	return storageClient, nil
}

// setBucketCORS lets browsers render uploaded media directly. Existing CORS
// rules are left alone.
func (c *CloudStorageClient) setBucketCORS(ctx context.Context) error {
	bucket := c.client.Bucket(c.bucketName)

	attrs, err := bucket.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bucket attributes: %w", err)
	}
	if len(attrs.CORS) > 0 {
		return nil
	}

	_, err = bucket.Update(ctx, storage.BucketAttrsToUpdate{
		CORS: []storage.CORS{{
			MaxAge:          time.Hour,
			Methods:         []string{"GET", "HEAD"},
			Origins:         []string{"*"},
			ResponseHeaders: []string{"Content-Type"},
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to update bucket CORS: %w", err)
	}
	return nil
}

// UploadFile streams r into folder under a random name and makes the object
// publicly readable.
func (c *CloudStorageClient) UploadFile(ctx context.Context, r io.Reader, fileType, folder string) (*service.UploadResult, error) {
	name := ObjectName(folder, fileType, time.Now())

	obj := c.client.Bucket(c.bucketName).Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = fileType
	wc.CacheControl = "public, max-age=86400"

	written, err := io.Copy(wc, r)
	if err != nil {
		_ = wc.Close()
		return nil, fmt.Errorf("failed to copy file to GCS: %w", err)
	}
	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, fmt.Errorf("failed to set ACL: %w", err)
	}

	return &service.UploadResult{
		URL:        PublicURL(c.bucketName, name),
		ObjectName: name,
		Size:       written,
	}, nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, objectName string) error {
	objectName = strings.TrimPrefix(objectName, PublicURL(c.bucketName, ""))
	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// ObjectName builds "<folder>/<uuid>-<timestamp><ext>".
func ObjectName(folder, fileType string, now time.Time) string {
	folder = strings.Trim(folder, "/")
	return fmt.Sprintf("%s/%s-%s%s", folder, uuid.New().String(), now.Format("20060102150405"), Extension(fileType))
}

func Extension(fileType string) string {
	switch strings.ToLower(fileType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}

func PublicURL(bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", publicHost, bucket, objectName)
}
