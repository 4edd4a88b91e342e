package upload

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appcfg "github.com/onetree-africa/core/internal/config"
	"github.com/onetree-africa/core/internal/pkg/apperr"
)

// S3Storage uploads files to an S3-compatible bucket.
type S3Storage struct {
	client       *s3.Client
	bucket       string
	region       string
	keyPrefix    string
	customDomain string
	endpoint     string
}

func NewS3Storage(ctx context.Context, opts appcfg.S3Config) (*S3Storage, error) {
	bucket := strings.TrimSpace(opts.Bucket)
	region := strings.TrimSpace(opts.Region)
	if bucket == "" || region == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket and region are required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := strings.TrimSuffix(strings.TrimSpace(opts.Endpoint), "/")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
		if opts.PathStyleAccess {
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:       client,
		bucket:       bucket,
		region:       region,
		keyPrefix:    strings.Trim(strings.TrimSpace(opts.KeyPrefix), "/"),
		customDomain: strings.TrimRight(strings.TrimSpace(opts.CustomDomain), "/"),
		endpoint:     endpoint,
	}, nil
}

func (s *S3Storage) Store(ctx context.Context, payload []byte, originalName, contentType string) (*StoredFile, error) {
	name := buildFileName(originalName)
	key := name
	if s.keyPrefix != "" {
		key = s.keyPrefix + "/" + name
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.StorageWriteFailed, "failed to upload to object store", err)
	}

	return &StoredFile{
		URL:         s.objectURL(key),
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(payload)),
		Storage:     "s3",
	}, nil
}

func (s *S3Storage) objectURL(key string) string {
	if s.customDomain != "" {
		return s.customDomain + "/" + key
	}
	if s.endpoint != "" {
		return s.endpoint + "/" + s.bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
