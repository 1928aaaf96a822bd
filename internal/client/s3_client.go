package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	appConfig "feedback-board-api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const s3Target = "s3"

// BackupKeyPrefix is the object key prefix for feedback snapshots
const BackupKeyPrefix = "backups/feedback"

// CallRecorder receives the outcome of each object storage call
type CallRecorder interface {
	RecordExternalCall(target, operation string, duration time.Duration, err error)
}

// S3ClientInterface defines the object storage operations used by the backup job
type S3ClientInterface interface {
	GenerateBackupKey(now time.Time) string
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	GetFileURL(key string) string
}

// S3Client wraps AWS S3 client and implements S3ClientInterface
type S3Client struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string // MinIO 사용 시 로컬 엔드포인트
	recorder CallRecorder
}

// NewS3Client creates a new S3 client. recorder may be nil.
func NewS3Client(cfg *appConfig.S3Config, recorder CallRecorder) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	// If endpoint is provided (for local MinIO), use explicit credentials
	if cfg.Endpoint != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for custom S3 endpoint")
		}
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	// Otherwise the AWS SDK default credential chain applies (IAM role, ~/.aws/credentials)
	awsCfg, err := config.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO
		}
	})

	return &S3Client{
		client:   s3Client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
		recorder: recorder,
	}, nil
}

// GenerateBackupKey generates a unique snapshot key
// Format: backups/feedback/{year}/{month}/{uuid}_{timestamp}.json
func (c *S3Client) GenerateBackupKey(now time.Time) string {
	return generateBackupKey(now)
}

func generateBackupKey(now time.Time) string {
	now = now.UTC()
	return fmt.Sprintf("%s/%s/%s/%s_%d.json",
		BackupKeyPrefix, now.Format("2006"), now.Format("01"), uuid.New().String(), now.Unix())
}

// UploadFile uploads a file to S3 and returns its URL
func (c *S3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	start := time.Now()
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if c.recorder != nil {
		c.recorder.RecordExternalCall(s3Target, "put_object", time.Since(start), err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return c.GetFileURL(key), nil
}

// GetFileURL returns the URL for an object key
func (c *S3Client) GetFileURL(key string) string {
	// MinIO 환경인 경우 (예: http://localhost:9000/bucket/key)
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucket, key)
	}

	// AWS S3 환경인 경우 (기본)
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
