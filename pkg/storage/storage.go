package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/devportfolio/portfolio-api/config"
	"github.com/devportfolio/portfolio-api/pkg/circuitbreaker"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
	"github.com/devportfolio/portfolio-api/pkg/retry"
	"github.com/devportfolio/portfolio-api/pkg/tracing"
)

// ErrObjectNotFound is returned when a key does not exist in the bucket
var ErrObjectNotFound = errors.New("object not found")

// Object is a streamed object body with its metadata. Callers must close Body.
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// Client is an S3 compatible object storage client for resumes and images
type Client struct {
	s3Client      *s3.Client
	bucketName    string
	publicBaseURL string
	retryConfig   retry.Config
	breaker       *gobreaker.CircuitBreaker
}

// NewClient creates a storage client from configuration
func NewClient(cfg config.StorageConfig) (*Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("storage credentials and bucket are required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{
		Region: region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	publicBase := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBase == "" {
		if cfg.Endpoint != "" {
			publicBase = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.Endpoint, "/"), cfg.BucketName)
		} else {
			publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.BucketName, region)
		}
	}

	logger.Info("Object storage client initialized",
		zap.String("bucket", cfg.BucketName),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("region", region),
	)

	return &Client{
		s3Client:      s3.New(opts),
		bucketName:    cfg.BucketName,
		publicBaseURL: publicBase,
		retryConfig:   retry.StorageConfig(),
		breaker:       newBreaker(),
	}, nil
}

// newBreaker opens after repeated storage failures. A missing key is a normal answer.
func newBreaker() *gobreaker.CircuitBreaker {
	cfg := circuitbreaker.DefaultConfig("object_storage")
	succeeded := cfg.IsSuccessful
	cfg.IsSuccessful = func(err error) bool {
		var noSuchKey *types.NoSuchKey
		return errors.As(err, &noSuchKey) || succeeded(err)
	}
	return circuitbreaker.NewCircuitBreaker(cfg)
}

// PutObject uploads data under key and returns its public URL
func (c *Client) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	const operation = "putObject"
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "storage.PutObject", attribute.String("storage.key", key))

	_, err := circuitbreaker.Execute(c.breaker, func() (struct{}, error) {
		return struct{}{}, retry.Do(ctx, c.retryConfig, operation, func() error {
			_, putErr := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:        aws.String(c.bucketName),
				Key:           aws.String(key),
				Body:          bytes.NewReader(data),
				ContentType:   aws.String(contentType),
				ContentLength: aws.Int64(int64(len(data))),
			})
			return putErr
		})
	})
	tracing.EndSpan(span, err)
	c.record(operation, start, err, zap.String("key", key), zap.Int("size_bytes", len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return c.PublicURL(key), nil
}

// GetObject opens key for streaming
func (c *Client) GetObject(ctx context.Context, key string) (*Object, error) {
	const operation = "getObject"
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "storage.GetObject", attribute.String("storage.key", key))

	out, err := circuitbreaker.Execute(c.breaker, func() (*s3.GetObjectOutput, error) {
		return c.s3Client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(c.bucketName),
			Key:    aws.String(key),
		})
	})
	tracing.EndSpan(span, err)
	c.record(operation, start, err, zap.String("key", key))
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	obj := &Object{
		Body:        out.Body,
		Size:        aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
	}
	return obj, nil
}

// DeleteObject removes key. Deleting a missing key is not an error.
func (c *Client) DeleteObject(ctx context.Context, key string) error {
	const operation = "deleteObject"
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "storage.DeleteObject", attribute.String("storage.key", key))

	_, err := circuitbreaker.Execute(c.breaker, func() (struct{}, error) {
		return struct{}{}, retry.Do(ctx, c.retryConfig, operation, func() error {
			_, delErr := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(c.bucketName),
				Key:    aws.String(key),
			})
			return delErr
		})
	})
	tracing.EndSpan(span, err)
	c.record(operation, start, err, zap.String("key", key))
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// PublicURL returns the URL a browser uses to fetch key
func (c *Client) PublicURL(key string) string {
	return c.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL reverses PublicURL. It reports false for URLs outside this bucket.
func (c *Client) KeyFromURL(rawURL string) (string, bool) {
	prefix := c.publicBaseURL + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(rawURL, prefix)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	key, err := url.PathUnescape(key)
	if err != nil || key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}

func (c *Client) record(operation string, start time.Time, err error, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	status := metrics.StatusLabel(err)

	metrics.StorageOperationDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.StorageOperationTotal.WithLabelValues(operation, status).Inc()

	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.LogAPICall("object_storage", operation, status, duration, fields...)
}
