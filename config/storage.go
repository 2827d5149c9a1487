package config

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrStorageDisabled is returned when no bucket is configured.
var ErrStorageDisabled = errors.New("meal image storage is not configured")

// S3Config holds the S3 client and the bucket meal photos are stored in
type S3Config struct {
	Client     *s3.Client
	BucketName string
}

// NewS3Config builds an S3 client from the default AWS credential chain.
func NewS3Config(ctx context.Context, cfg *Config) (*S3Config, error) {
	if cfg.S3BucketName == "" {
		return nil, ErrStorageDisabled
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: cfg.S3BucketName,
	}, nil
}

// GeneratePresignedURL generates a presigned GET URL for the given object key
func (s *S3Config) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(s.Client)
	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
