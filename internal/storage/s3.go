package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"

	"ayudame3d-backend/internal/logger"
)

// Config holds object storage settings
type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

type s3Storage struct {
	uploader *s3manager.Uploader
	bucket   string
}

// NewS3Storage creates an S3-backed ObjectStorage.
func NewS3Storage(cfg Config) (ObjectStorage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &s3Storage{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
	}, nil
}

func (s *s3Storage) Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error) {
	// Prefix with a uuid so re-uploads of the same filename never collide.
	key := fmt.Sprintf("%s/%s", uuid.NewString(), filename)

	logger.ExternalServiceCall("s3", "Upload", "bucket", s.bucket, "key", key)
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         aws.String("public-read"),
		ContentType: aws.String(contentType),
	})
	logger.ExternalServiceResult("s3", "Upload", err, "bucket", s.bucket, "key", key)
	if err != nil {
		return "", fmt.Errorf("failed to upload %q to bucket %q: %w", filename, s.bucket, err)
	}
	return out.Location, nil
}
