package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog"

	"github.com/df07/go-padvinder/pkg/renderer"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// ObjectPutter is the part of the S3 client the uploader needs
type ObjectPutter interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3Config selects the bucket and, for S3-compatible stores, the endpoint.
// Without static keys the default AWS credential chain is used.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Uploader stores rendered images in an S3 bucket
type S3Uploader struct {
	client ObjectPutter
	bucket string
	logger zerolog.Logger
}

// NewS3Uploader creates an uploader backed by an AWS session
func NewS3Uploader(cfg S3Config, logger zerolog.Logger) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
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
	return NewS3UploaderWithClient(s3.New(sess), cfg.Bucket, logger), nil
}

// NewS3UploaderWithClient creates an uploader around an existing client
func NewS3UploaderWithClient(client ObjectPutter, bucket string, logger zerolog.Logger) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, logger: logger}
}

// Upload stores data under key
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Info().Str("bucket", u.bucket).Str("key", key).Int64("bytes", size).Msg("Uploaded render")
	return nil
}

// UploadPNG tone maps the image and stores it as PNG under key
func (u *S3Uploader) UploadPNG(ctx context.Context, key string, img *renderer.Image, gamma float64) error {
	data, err := EncodePNG(img, gamma)
	if err != nil {
		return err
	}
	return u.Upload(ctx, key, data, "image/png")
}
