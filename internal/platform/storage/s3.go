package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/ports"
	"github.com/VidTubeHQ/vidtube_backend/internal/platform/config"
)

// S3MediaStore implements ports.MediaStore backed by an S3-compatible
// service (AWS S3 or MinIO).
type S3MediaStore struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

var _ ports.MediaStore = (*S3MediaStore)(nil)

// NewS3MediaStore configures an uploader targeting the configured bucket.
func NewS3MediaStore(ctx context.Context, cfg *config.Config) (*S3MediaStore, error) {
	if strings.TrimSpace(cfg.MediaBucket) == "" {
		return nil, fmt.Errorf("s3 media store: bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.MediaRegion),
	}

	if cfg.MediaAccessKeyID != "" && cfg.MediaSecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.MediaAccessKeyID, cfg.MediaSecretKey, ""),
		))
	}

	if strings.TrimSpace(cfg.MediaEndpoint) != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == s3.ServiceID {
				return aws.Endpoint{
					URL:           cfg.MediaEndpoint,
					SigningRegion: cfg.MediaRegion,
				}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
		u.LeavePartsOnError = false
	})

	return &S3MediaStore{
		client:   client,
		uploader: uploader,
		bucket:   cfg.MediaBucket,
		baseURL:  strings.TrimSuffix(cfg.MediaPublicBaseURL, "/"),
	}, nil
}

// Upload stores the content under the given key and returns the public URL.
func (s *S3MediaStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", fmt.Errorf("s3 media store: empty key")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	out, err := s.uploader.Upload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("s3 media store upload %s: %w", key, err)
	}

	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key), nil
	}
	return out.Location, nil
}

// Delete removes a previously uploaded asset given its public URL.
func (s *S3MediaStore) Delete(ctx context.Context, assetURL string) error {
	key, err := s.keyFromURL(assetURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 media store delete %s: %w", key, err)
	}
	return nil
}

// keyFromURL recovers the object key from a public asset URL, handling
// both the configured base URL and path-style endpoint URLs.
func (s *S3MediaStore) keyFromURL(assetURL string) (string, error) {
	if s.baseURL != "" && strings.HasPrefix(assetURL, s.baseURL+"/") {
		return strings.TrimPrefix(assetURL, s.baseURL+"/"), nil
	}

	u, err := url.Parse(assetURL)
	if err != nil {
		return "", fmt.Errorf("s3 media store: invalid asset URL %q: %w", assetURL, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	key = strings.TrimPrefix(key, s.bucket+"/")
	if key == "" {
		return "", fmt.Errorf("s3 media store: cannot derive key from %q", assetURL)
	}
	return key, nil
}
