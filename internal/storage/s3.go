// Package storage publishes rendered PDFs to S3 or any S3-compatible
// object store and hands back their public URL.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Sentinel errors for storage operations.
var (
	ErrInvalidConfig    = errors.New("storage: bucket and region are required")
	ErrLoadConfig       = errors.New("storage: failed to load AWS config")
	ErrInvalidKey       = errors.New("storage: invalid object key")
	ErrEmptyObject      = errors.New("storage: empty object")
	ErrBucketNotFound   = errors.New("storage: bucket not found")
	ErrAccessDenied     = errors.New("storage: access denied")
	ErrUnavailable      = errors.New("storage: service unavailable")
	ErrOperationTimeout = errors.New("storage: operation timed out")
)

// PDFContentType is stored on every object published by Publish.
const PDFContentType = "application/pdf"

// S3Client is the subset of *s3.Client the publisher calls.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config holds the bucket location and credentials. Empty credentials fall
// back to the default AWS chain (environment, shared config, IAM role).
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string // S3-compatible services such as MinIO or R2
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // public URL prefix; derived from the endpoint when empty
	UsePathStyle    bool
}

// Object describes a published file.
type Object struct {
	Key  string
	URL  string
	Size int
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithClient injects a preconfigured client, skipping AWS config loading.
func WithClient(c S3Client) Option {
	return func(p *Publisher) {
		p.client = c
	}
}

// Publisher uploads objects to a single bucket. It is safe for concurrent use.
type Publisher struct {
	client  S3Client
	bucket  string
	baseURL string
}

// NewPublisher builds a Publisher from cfg.
func NewPublisher(ctx context.Context, cfg Config, opts ...Option) (*Publisher, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	p := &Publisher{
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client != nil {
		return p, nil
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	p.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return p, nil
}

func publicBaseURL(cfg Config) string {
	base := cfg.BaseURL
	if base == "" {
		if cfg.Endpoint != "" {
			base = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// Publish uploads data under key as a PDF and returns its public location.
func (p *Publisher) Publish(ctx context.Context, key string, data []byte) (*Object, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if len(data) == 0 {
		return nil, ErrEmptyObject
	}

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(PDFContentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return &Object{Key: key, URL: p.URL(key), Size: len(data)}, nil
}

// URL returns the public URL of key.
func (p *Publisher) URL(key string) string {
	return p.baseURL + strings.TrimPrefix(key, "/")
}

func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: upload", ErrOperationTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return ErrBucketNotFound
		case "AccessDenied":
			return fmt.Errorf("%w: upload", ErrAccessDenied)
		case "SlowDown", "ServiceUnavailable", "RequestTimeout":
			return fmt.Errorf("%w: %s", ErrUnavailable, apiErr.ErrorCode())
		default:
			return fmt.Errorf("upload failed (code: %s): %w", apiErr.ErrorCode(), err)
		}
	}
	return fmt.Errorf("upload failed: %w", err)
}
