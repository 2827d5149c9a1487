package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/calorie-quest/backend/config"
	"github.com/pageza/calorie-quest/backend/internal/logger"
)

// MaxImageBytes caps uploaded meal photos.
const MaxImageBytes = 10 << 20

const previewExpiry = 15 * time.Minute

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// objectStore is the subset of the S3 client used for uploads.
type objectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// UploadedImage describes a stored meal photo.
type UploadedImage struct {
	Key        string `json:"key"`
	ImageURL   string `json:"imageUrl"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

// ImageService stores meal photos in S3.
type ImageService struct {
	store   objectStore
	bucket  string
	presign func(ctx context.Context, key string, expiry time.Duration) (string, error)
	now     Clock
	log     *zap.Logger
}

var _ IImageService = (*ImageService)(nil)

// NewImageService creates an ImageService. A nil s3Config disables uploads.
func NewImageService(s3Config *config.S3Config, now Clock) *ImageService {
	s := &ImageService{now: now, log: logger.Named("images")}
	if s3Config != nil {
		s.store = s3Config.Client
		s.bucket = s3Config.BucketName
		s.presign = s3Config.GeneratePresignedURL
	}
	return s
}

// Enabled reports whether a bucket is configured.
func (s *ImageService) Enabled() bool {
	return s.store != nil
}

// UploadMealImage validates the payload as an image and stores it.
func (s *ImageService) UploadMealImage(ctx context.Context, data []byte) (*UploadedImage, error) {
	if !s.Enabled() {
		return nil, ErrStorageDisabled
	}
	if len(data) == 0 {
		return nil, invalid("image is empty")
	}
	if len(data) > MaxImageBytes {
		return nil, invalid("image exceeds %d MB", MaxImageBytes>>20)
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, invalid("unsupported image type %s", contentType)
	}

	key := fmt.Sprintf("meals/%s/%s%s", s.now().Format("2006/01"), uuid.NewString(), ext)
	_, err := s.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	img := &UploadedImage{
		Key:      key,
		ImageURL: fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key),
	}
	if s.presign != nil {
		if url, err := s.presign(ctx, key, previewExpiry); err == nil {
			img.PreviewURL = url
		} else {
			s.log.Warn("failed to presign preview URL", zap.String("key", key), zap.Error(err))
		}
	}

	s.log.Info("meal image uploaded", zap.String("key", key), zap.Int("bytes", len(data)))
	return img, nil
}
