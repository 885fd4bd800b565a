// Package storage talks to an S3-compatible object store over its HTTP
// object API and hands back public URLs. The database only ever holds the
// returned references.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-internmatch-backend/pkg/apperror"
)

type ObjectStore struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewObjectStore(baseURL, serviceKey string) *ObjectStore {
	return &ObjectStore{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *ObjectStore) IsConfigured() bool {
	return s.baseURL != "" && s.serviceKey != ""
}

// Put uploads the object and returns its public URL. Existing objects with
// the same name are overwritten.
func (s *ObjectStore) Put(ctx context.Context, bucket, name string, data []byte, contentType string) (string, error) {
	if !s.IsConfigured() {
		return "", apperror.Internal(fmt.Errorf("object storage is not configured"))
	}

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, bucket, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", apperror.Internal(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperror.BadUpstream("Failed to upload file", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", apperror.BadUpstream("Failed to upload file",
			fmt.Errorf("object store returned %d: %s", resp.StatusCode, string(body)))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, bucket, name), nil
}
