package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// UploadTimeout bounds a single object upload.
const UploadTimeout = 10 * time.Second

// ErrMissingS3Config is returned when required S3 environment variables
// are not set.
var ErrMissingS3Config = errors.New("incomplete S3 configuration")

// S3Config carries the credentials and location for publishing renders.
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	CDNURL    string
}

// S3ConfigFromEnv builds an S3Config from the RTRACER_S3_* environment
// variables. Access key, secret key and bucket are required; endpoint,
// region and CDN URL may be empty.
func S3ConfigFromEnv() (S3Config, error) {
	config := S3Config{
		AccessKey: os.Getenv("RTRACER_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("RTRACER_S3_SECRET_KEY"),
		Endpoint:  os.Getenv("RTRACER_S3_ENDPOINT"),
		Region:    os.Getenv("RTRACER_S3_REGION"),
		Bucket:    os.Getenv("RTRACER_S3_BUCKET"),
		CDNURL:    os.Getenv("RTRACER_CDN_URL"),
	}
	if config.AccessKey == "" || config.SecretKey == "" || config.Bucket == "" {
		return S3Config{}, fmt.Errorf("%w: RTRACER_S3_ACCESS_KEY, RTRACER_S3_SECRET_KEY and RTRACER_S3_BUCKET must be set", ErrMissingS3Config)
	}
	return config, nil
}

type s3API interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// Publisher uploads rendered images to an S3-compatible bucket.
type Publisher struct {
	config S3Config
	client s3API
}

// NewPublisher creates a Publisher from the given configuration.
func NewPublisher(config S3Config) (*Publisher, error) {
	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return &Publisher{config: config, client: s3.New(sess)}, nil
}

// Publish PNG-encodes the image, uploads it under key with a public-read
// ACL and returns the public URL.
func (p *Publisher) Publish(ctx context.Context, img image.Image, key string) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String("image/png"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return p.PublicURL(key), nil
}

// PublicURL returns the URL the uploaded key is served from. The CDN URL
// takes precedence; otherwise the path-style endpoint URL is used.
func (p *Publisher) PublicURL(key string) string {
	if p.config.CDNURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(p.config.CDNURL, "/"), key)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(p.config.Endpoint, "/"), p.config.Bucket, key)
}
