package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeStore) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, nil
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func newTestImageService(store *fakeStore) *ImageService {
	svc := NewImageService(nil, fixedClock(testNow))
	svc.store = store
	svc.bucket = "meal-photos"
	svc.presign = func(_ context.Context, key string, expiry time.Duration) (string, error) {
		return "https://signed.example/" + key + "?ttl=" + expiry.String(), nil
	}
	return svc
}

func TestImageService_UploadMealImage(t *testing.T) {
	ctx := context.Background()

	t.Run("should store a png under a dated key", func(t *testing.T) {
		store := &fakeStore{}
		img, err := newTestImageService(store).UploadMealImage(ctx, pngHeader)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(img.Key, "meals/2025/03/"))
		assert.True(t, strings.HasSuffix(img.Key, ".png"))
		assert.Equal(t, "https://meal-photos.s3.amazonaws.com/"+img.Key, img.ImageURL)
		assert.Contains(t, img.PreviewURL, "ttl=15m0s")

		require.NotNil(t, store.input)
		assert.Equal(t, "meal-photos", aws.ToString(store.input.Bucket))
		assert.Equal(t, "image/png", aws.ToString(store.input.ContentType))
		assert.Equal(t, pngHeader, store.body)
	})

	t.Run("should reject non images", func(t *testing.T) {
		_, err := newTestImageService(&fakeStore{}).UploadMealImage(ctx, []byte("just some text"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("should reject empty and oversized payloads", func(t *testing.T) {
		svc := newTestImageService(&fakeStore{})
		_, err := svc.UploadMealImage(ctx, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)

		big := make([]byte, MaxImageBytes+1)
		copy(big, pngHeader)
		_, err = svc.UploadMealImage(ctx, big)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("should surface storage errors", func(t *testing.T) {
		_, err := newTestImageService(&fakeStore{err: errors.New("access denied")}).UploadMealImage(ctx, pngHeader)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})

	t.Run("should report disabled storage", func(t *testing.T) {
		svc := NewImageService(nil, fixedClock(testNow))
		assert.False(t, svc.Enabled())
		_, err := svc.UploadMealImage(ctx, pngHeader)
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})
}
