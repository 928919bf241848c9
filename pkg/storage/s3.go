package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	internalConfig "github.com/lkarlova/ourkisses-backend/internal/config"
)

// S3Storage stores blobs in an S3-compatible bucket (R2 included).
// Public paths are full URLs under the configured public base.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Storage(cfg *internalConfig.Config) (*S3Storage, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.S3.AccountID),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.S3.Bucket,
		publicURL: strings.TrimSuffix(cfg.S3.PublicURL, "/"),
	}, nil
}

func (s *S3Storage) Save(filename string, reader io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filename),
	}

	// PutObject needs a known length; measure seekable readers in
	// place and buffer the rest.
	if seeker, ok := reader.(io.ReadSeeker); ok {
		size, err := seeker.Seek(0, io.SeekEnd)
		if err != nil {
			return "", fmt.Errorf("failed to measure file: %w", err)
		}
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return "", fmt.Errorf("failed to rewind file: %w", err)
		}
		input.Body = seeker
		input.ContentLength = aws.Int64(size)
	} else {
		buf, err := io.ReadAll(reader)
		if err != nil {
			return "", fmt.Errorf("failed to read file content: %w", err)
		}
		input.Body = bytes.NewReader(buf)
		input.ContentLength = aws.Int64(int64(len(buf)))
	}

	if _, err := s.client.PutObject(context.TODO(), input); err != nil {
		return "", fmt.Errorf("failed to upload to bucket: %w", err)
	}

	return s.publicURL + "/" + filename, nil
}

func (s *S3Storage) Delete(publicPath string) error {
	key := strings.TrimPrefix(publicPath, s.publicURL+"/")

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}

	_, err := s.client.DeleteObject(context.TODO(), input)
	return err
}
