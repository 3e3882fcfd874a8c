package output

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/ppm"
)

// ContentType is the MIME type used for uploaded images
const ContentType = "image/x-portable-pixmap"

// DefaultUploadTimeout bounds a single upload
const DefaultUploadTimeout = 10 * time.Second

// S3Config describes the bucket renders are uploaded to
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Optional, for S3-compatible stores
	AccessKey string // Optional; the default credential chain is used when empty
	SecretKey string
}

// S3Uploader puts serialized images into an S3 bucket
type S3Uploader struct {
	client  *s3.S3
	bucket  string
	timeout time.Duration
	logger  core.Logger
}

// NewS3Uploader creates an uploader for the configured bucket
func NewS3Uploader(cfg S3Config, logger core.Logger) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket must be set")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	if logger == nil {
		logger = core.NewDiscardLogger()
	}

	return &S3Uploader{
		client:  s3.New(sess),
		bucket:  cfg.Bucket,
		timeout: DefaultUploadTimeout,
		logger:  logger,
	}, nil
}

// Upload stores the P3 encoding of img under key
func (u *S3Uploader) Upload(ctx context.Context, key string, img *ppm.Image) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	data := img.Bytes()
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(ContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to bucket %s: %w", key, u.bucket, err)
	}

	u.logger.Printf("Uploaded %s to S3 bucket %s (%d bytes)\n", key, u.bucket, len(data))
	return nil
}
