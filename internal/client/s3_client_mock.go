package client

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// MockS3Client implements S3ClientInterface for testing without AWS credentials
type MockS3Client struct {
	Bucket string

	// Optional function overrides for custom test behavior
	GenerateBackupKeyFunc func(now time.Time) string
	UploadFileFunc        func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)

	mu      sync.Mutex
	Uploads map[string][]byte
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket:  "test-bucket",
		Uploads: make(map[string][]byte),
	}
}

func (m *MockS3Client) GenerateBackupKey(now time.Time) string {
	if m.GenerateBackupKeyFunc != nil {
		return m.GenerateBackupKeyFunc(now)
	}
	return generateBackupKey(now)
}

// UploadFile stores the body in memory unless UploadFileFunc is set
func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload body: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Uploads == nil {
		m.Uploads = make(map[string][]byte)
	}
	m.Uploads[key] = data
	return m.GetFileURL(key), nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	return fmt.Sprintf("https://%s.s3.mock.amazonaws.com/%s", m.Bucket, key)
}

// Uploaded returns a copy of the stored body for key
func (m *MockS3Client) Uploaded(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Uploads[key]
	return data, ok
}
