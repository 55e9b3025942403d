package objectstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store exposes the object storage operations the marketplace needs:
// uploads at listing time and presigned downloads for entitled buyers.
type Store interface {
	Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error
	SignedURL(ctx context.Context, bucket, key string, expiry time.Duration, downloadName string) (string, error)
	PublicURL(bucket, key string) string
}

// Client implements Store using any S3-compatible endpoint.
type Client struct {
	mc       *minio.Client
	endpoint string
	secure   bool
	logger   *slog.Logger
}

// NewClient connects to the storage endpoint and ensures the given buckets
// exist.
func NewClient(ctx context.Context, endpoint, accessKey, secretKey string, secure bool, buckets []string, logger *slog.Logger) (*Client, error) {
	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}

	for _, bucket := range buckets {
		exists, err := mc.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("check bucket %q: %w", bucket, err)
		}
		if !exists {
			if err := mc.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
			}
		}
	}

	return &Client{mc: mc, endpoint: endpoint, secure: secure, logger: logger}, nil
}

// Upload stores an object.
func (c *Client) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	_, err := c.mc.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

// SignedURL mints a time-boxed presigned GET URL. Expiry is enforced by the
// storage provider, not by this process.
func (c *Client) SignedURL(ctx context.Context, bucket, key string, expiry time.Duration, downloadName string) (string, error) {
	params := make(url.Values)
	if downloadName != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	}

	u, err := c.mc.PresignedGetObject(ctx, bucket, key, expiry, params)
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", bucket, key, err)
	}
	return u.String(), nil
}

// PublicURL builds the plain object URL for public media.
func (c *Client) PublicURL(bucket, key string) string {
	scheme := "http"
	if c.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, c.endpoint, bucket, key)
}
