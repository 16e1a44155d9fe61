// Package s3_client retrieves raw transcript text from object storage.
package s3_client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"analyzer/internal/config"
	"analyzer/internal/models"
)

// Client wraps the S3 API for transcript retrieval.
type Client struct {
	s3     *s3.Client
	logger *zap.Logger
}

// NewClient creates an S3 client from static credentials. A non-empty
// endpoint switches to path-style addressing (minio and the like).
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	client := s3.NewFromConfig(aws.Config{Region: cfg.S3.Region}, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, "")
	})
	return &Client{s3: client, logger: logger}
}

// ExtractKey normalizes the caller-supplied transcript path into an object key.
// "s3://bucket/path/to/file" yields "path/to/file"; http(s) URLs yield their
// last two path segments; anything else is used as the key unchanged.
func ExtractKey(s3Path string) string {
	if strings.HasPrefix(s3Path, "s3://") {
		parts := strings.SplitN(s3Path, "/", 4)
		if len(parts) >= 4 {
			return parts[3]
		}
		return ""
	}
	if strings.HasPrefix(s3Path, "http://") || strings.HasPrefix(s3Path, "https://") {
		parts := strings.Split(s3Path, "/")
		if len(parts) >= 2 {
			return strings.Join(parts[len(parts)-2:], "/")
		}
		return ""
	}
	return s3Path
}

// FetchTranscript reads the transcript object as UTF-8 text. A missing object
// or bucket maps to models.ErrObjectNotFound; an existing but empty object
// maps to models.ErrEmptyTranscript.
func (c *Client) FetchTranscript(ctx context.Context, bucket, s3Path string) (string, error) {
	key := ExtractKey(s3Path)
	c.logger.Info("Fetching transcript from S3",
		zap.String("bucket", bucket),
		zap.String("path", s3Path),
		zap.String("key", key))

	if key == "" {
		return "", fmt.Errorf("invalid transcript path %q: %w", s3Path, models.ErrObjectNotFound)
	}

	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		var noBucket *types.NoSuchBucket
		if errors.As(err, &noKey) || errors.As(err, &noBucket) {
			return "", fmt.Errorf("s3://%s/%s: %w", bucket, key, models.ErrObjectNotFound)
		}
		return "", fmt.Errorf("failed to get object s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read object body: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("s3://%s/%s: %w", bucket, key, models.ErrEmptyTranscript)
	}

	return string(data), nil
}
