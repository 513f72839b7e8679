package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/harikrish1993-phk/telvel/config"
)

// UploadError is a client-facing file intake failure (wrong type, too large).
// It is distinguishable from internal I/O errors so handlers can answer 400
// instead of 500.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string { return e.Message }

var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// CheckResumeFile enforces the intake constraints before anything is stored.
func CheckResumeFile(filename string, size, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedResumeExts[ext] {
		return &UploadError{Message: "Only PDF, DOC, and DOCX files are allowed"}
	}
	if size > maxBytes {
		return &UploadError{Message: fmt.Sprintf("File too large — max %dMB", maxBytes/(1024*1024))}
	}
	return nil
}

// GenerateResumeName builds a collision-resistant storage name. The original
// filename contributes only its extension, never its base name, so a crafted
// name cannot traverse paths or overwrite another upload.
func GenerateResumeName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("resume-%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// ResumeStorage persists uploaded resumes. Save returns the stored path (or
// object name) recorded on the application.
type ResumeStorage interface {
	Save(ctx context.Context, name string, r io.Reader, size int64) (string, error)
	Remove(ctx context.Context, name string) error
	URL(name string) string
}

// NewResumeStorage selects the backend from config.
func NewResumeStorage(cfg *config.StorageConfig, uploads *config.UploadsConfig) (ResumeStorage, error) {
	switch cfg.Backend {
	case "minio":
		return NewMinioStorage(&cfg.Minio)
	case "disk", "":
		return NewDiskStorage(uploads.Dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// ── Disk ──

// DiskStorage writes resumes into a single server-side directory, served
// statically under /uploads.
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &DiskStorage{dir: dir}, nil
}

func (s *DiskStorage) Save(ctx context.Context, name string, r io.Reader, size int64) (string, error) {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}
	return path, nil
}

func (s *DiskStorage) Remove(ctx context.Context, name string) error {
	return os.Remove(filepath.Join(s.dir, name))
}

func (s *DiskStorage) URL(name string) string {
	return "/uploads/" + name
}

// ── MinIO ──

// MinioStorage keeps resumes in an object bucket instead of the local disk.
type MinioStorage struct {
	client *minio.Client
	cfg    *config.MinioConfig
}

func NewMinioStorage(cfg *config.MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinioStorage{client: client, cfg: cfg}, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

func (s *MinioStorage) Save(ctx context.Context, name string, r io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, name, r, size, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return name, nil
}

func (s *MinioStorage) Remove(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.cfg.Bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *MinioStorage) URL(name string) string {
	protocol := "http"
	if s.cfg.UseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.cfg.Endpoint, s.cfg.Bucket, name)
}
