package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "crescendai-backend/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sirupsen/logrus"
)

// S3Options configures an S3Store
type S3Options struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UsePathStyle    bool
	PublicBaseURL   string
}

// S3Store keeps audio in an S3 bucket. A custom endpoint makes it work against MinIO.
type S3Store struct {
	client *s3.Client
	opts   S3Options
}

// NewS3Store creates an S3-backed BlobStore
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})

	return &S3Store{client: client, opts: opts}, nil
}

// EnsureBucket creates the bucket when it does not exist yet
func (s *S3Store) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.opts.Bucket)})
	if err == nil {
		return nil
	}
	logrus.WithField("bucket", s.opts.Bucket).Info("Creating bucket")
	if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.opts.Bucket)}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.opts.Bucket, err)
	}
	return nil
}

// Put uploads an object
func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*UploadResult, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.opts.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put object %s: %w", key, err)
	}

	objectURL := s.ObjectURL(key)
	return &UploadResult{
		URL:         objectURL,
		DownloadURL: objectURL,
		Pathname:    "/" + key,
		Size:        size,
	}, nil
}

// Get opens an object for reading
func (s *S3Store) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, apperrors.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	return out.Body, nil
}

// Delete removes an object
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// Info describes the store
func (s *S3Store) Info() StorageInfo {
	return StorageInfo{
		Provider:   "s3",
		Region:     s.opts.Region,
		UploadedAt: time.Now(),
	}
}

// ObjectURL returns the externally reachable URL of an object
func (s *S3Store) ObjectURL(key string) string {
	return objectURL(s.opts, key)
}

func objectURL(opts S3Options, key string) string {
	switch {
	case opts.PublicBaseURL != "":
		return strings.TrimRight(opts.PublicBaseURL, "/") + "/" + key
	case opts.Endpoint != "" && opts.UsePathStyle:
		return strings.TrimRight(opts.Endpoint, "/") + "/" + opts.Bucket + "/" + key
	case opts.Endpoint != "":
		scheme, host, ok := strings.Cut(opts.Endpoint, "://")
		if !ok {
			return fmt.Sprintf("https://%s.%s/%s", opts.Bucket, strings.TrimRight(opts.Endpoint, "/"), key)
		}
		return fmt.Sprintf("%s://%s.%s/%s", scheme, opts.Bucket, strings.TrimRight(host, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", opts.Bucket, opts.Region, key)
}
