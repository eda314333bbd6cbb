package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

// GCSStore uploads to a Google Cloud Storage bucket.
type GCSStore struct {
	bucket     *storage.BucketHandle
	bucketName string
	urlPrefix  string
}

// NewGCSStore creates a store over the named bucket. urlPrefix overrides the
// default public URL base when the bucket is fronted by a CDN.
func NewGCSStore(ctx context.Context, bucketName, urlPrefix string) (*GCSStore, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("blobstore: bucket name must be provided")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("blobstore: failed to create storage client: %w", err)
	}
	if urlPrefix == "" {
		urlPrefix = fmt.Sprintf("https://storage.googleapis.com/%s", bucketName)
	}
	return &GCSStore{
		bucket:     client.Bucket(bucketName),
		bucketName: bucketName,
		urlPrefix:  strings.TrimRight(urlPrefix, "/"),
	}, nil
}

func (s *GCSStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("blobstore: failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("blobstore: failed to finalize object %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s", s.urlPrefix, key), nil
}
