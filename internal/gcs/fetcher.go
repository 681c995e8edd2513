// Package gcs reads statements from and writes reports to Google Cloud Storage.
package gcs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// Client wraps a storage client. Credentials come from Application Default Credentials.
type Client struct {
	client *storage.Client
}

// NewClient creates a Cloud Storage client.
func NewClient(ctx context.Context) (*Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.client.Close()
}

// Fetch downloads the object named by a gs://bucket/path URI.
func (c *Client) Fetch(ctx context.Context, uri string) ([]byte, error) {
	bucket, object, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	rc, err := c.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading object %s/%s: %w", bucket, object, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading bytes of %s: %w", uri, err)
	}
	return data, nil
}

// Upload writes data to the object named by a gs://bucket/path URI.
func (c *Client) Upload(ctx context.Context, uri string, data []byte, contentType string) error {
	bucket, object, err := ParseURI(uri)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := c.client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return fmt.Errorf("copy to %s: %w", uri, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize upload of %s: %w", uri, err)
	}
	return nil
}

// ParseURI splits gs://bucket/path into bucket and object path.
func ParseURI(uri string) (string, string, error) {
	if !strings.HasPrefix(uri, "gs://") {
		return "", "", fmt.Errorf("invalid GCS URI: %s", uri)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, "gs://"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GCS URI (no object path): %s", uri)
	}
	return parts[0], parts[1], nil
}
