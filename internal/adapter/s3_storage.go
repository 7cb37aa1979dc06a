package adapter

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3Storage keeps resumes in an S3 compatible bucket and hands out presigned
// GET links.
type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	linkTTL time.Duration
	logger  *logger.Logger
}

// NewS3Storage builds an S3 client with static credentials. A non-empty
// cfg.Endpoint switches to path-style addressing for MinIO and friends.
func NewS3Storage(ctx context.Context, cfg config.S3, log *logger.Logger) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		linkTTL: cfg.LinkTTL,
		logger:  log,
	}, nil
}

// storageKey returns a unique object key that keeps the original file name.
func storageKey(filename string, now time.Time) string {
	return fmt.Sprintf("resumes/%d/%02d/%02d/%s/%s", now.Year(), now.Month(), now.Day(), uuid.New(), path.Base(filename))
}

// Upload implements [FileStorage]. The file id is the object key.
func (s *S3Storage) Upload(ctx context.Context, file models.UploadFile) (models.StoredFile, error) {
	key := storageKey(file.Filename, time.Now().UTC())

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   file.Body,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*S3Storage.Upload").Str("filename", file.Filename).Msg("s3 upload failed")
		return models.StoredFile{}, fmt.Errorf("s3 upload %q: %w", file.Filename, err)
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.linkTTL))
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("presign %q: %w", key, err)
	}

	return models.StoredFile{FileID: key, Link: req.URL}, nil
}

// Delete implements [FileStorage]. S3 deletes are idempotent, so the object
// is looked up first to report missing files.
func (s *S3Storage) Delete(ctx context.Context, fileID string) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		var notFound *types.NotFound
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
			return ErrFileNotFound
		}
		return fmt.Errorf("s3 head %q: %w", fileID, err)
	}

	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileID),
	}); err != nil {
		return fmt.Errorf("s3 delete %q: %w", fileID, err)
	}

	return nil
}
