package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/estateline/estateline-api/pkg/logger"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/estateline/estateline-api/pkg/retry"
	"go.uber.org/zap"
)

const (
	// MaxImageBytes is the upload size ceiling for listing photos.
	MaxImageBytes = 10 * 1024 * 1024

	// thumbnailWidth is the bounding width for generated thumbnails;
	// height follows the aspect ratio.
	thumbnailWidth = 480
)

// Client wraps an S3-compatible object storage bucket holding property
// images.
type Client struct {
	s3Client *s3.Client
	bucket   string
	endpoint string
}

// NewClient creates an object storage client for the configured bucket.
func NewClient(accessKeyID, secretAccessKey, bucket, endpoint, region string) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("object storage endpoint is required")
	}
	if region == "" {
		region = "us-east-1"
	}

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"", // session token not needed
		),
	})

	logger.Info("Object storage client initialized",
		zap.String("bucket", bucket),
		zap.String("endpoint", endpoint),
		zap.String("region", region),
	)

	return &Client{
		s3Client: s3Client,
		bucket:   bucket,
		endpoint: endpoint,
	}, nil
}

// UploadPropertyImage uploads a listing photo plus a derived thumbnail and
// returns the public URLs of both objects. Keys are property-scoped:
// properties/{id}/{name} and properties/{id}/thumbs/{name}.
func (c *Client) UploadPropertyImage(ctx context.Context, propertyID int, name string, data []byte, contentType string) (imageURL, thumbURL string, err error) {
	start := time.Now()
	operation := "uploadPropertyImage"

	if err := ValidateImageType(contentType); err != nil {
		return "", "", err
	}
	if len(data) > MaxImageBytes {
		return "", "", fmt.Errorf("image exceeds maximum size of %d bytes", MaxImageBytes)
	}

	key := fmt.Sprintf("properties/%d/%s", propertyID, name)
	if err := c.putObject(ctx, key, data, contentType); err != nil {
		c.recordMetrics(operation, "error", start)
		logger.LogAPICall("object_storage", operation, "error", metrics.MeasureDuration(start),
			zap.Error(err), zap.String("key", key))
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}

	thumbKey := fmt.Sprintf("properties/%d/thumbs/%s", propertyID, name)
	thumbData, thumbErr := buildThumbnail(data)
	if thumbErr != nil {
		// A listing photo without a thumbnail is still usable; log and
		// fall back to the full image URL.
		logger.Warn("Failed to build thumbnail, using full image",
			zap.Error(thumbErr), zap.String("key", key))
		thumbKey = key
	} else if err := c.putObject(ctx, thumbKey, thumbData, "image/jpeg"); err != nil {
		logger.Warn("Failed to upload thumbnail, using full image",
			zap.Error(err), zap.String("key", thumbKey))
		thumbKey = key
	}

	c.recordMetrics(operation, "success", start)
	logger.LogAPICall("object_storage", operation, "success", metrics.MeasureDuration(start),
		zap.String("key", key),
		zap.Int("size_bytes", len(data)))

	return c.publicURL(key), c.publicURL(thumbKey), nil
}

// DeleteObject removes an object by key.
func (c *Client) DeleteObject(ctx context.Context, key string) error {
	start := time.Now()
	operation := "deleteObject"

	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		c.recordMetrics(operation, "error", start)
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	c.recordMetrics(operation, "success", start)
	return nil
}

func (c *Client) putObject(ctx context.Context, key string, data []byte, contentType string) error {
	return retry.Do(ctx, retry.StorageConfig(), "putObject", func() error {
		_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(c.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		return err
	})
}

func (c *Client) publicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.endpoint, c.bucket, key)
}

func (c *Client) recordMetrics(operation, status string, start time.Time) {
	duration := metrics.MeasureDuration(start)
	metrics.StorageRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, status).Inc()
}

// buildThumbnail decodes the image and re-encodes a width-bounded JPEG.
func buildThumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > thumbnailWidth {
		img = imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(82)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// ValidateImageType validates the image content type
func ValidateImageType(contentType string) error {
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
	}

	if !validTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("invalid file type: %s. Allowed types: jpeg, jpg, png, webp", contentType)
	}

	return nil
}

// decodedBounds is a small helper for tests to confirm thumbnails keep
// aspect ratio.
func decodedBounds(data []byte) (image.Rectangle, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return image.Rectangle{}, err
	}
	return img.Bounds(), nil
}
