package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/travel-admin/internal/config"
	"github.com/travel-admin/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	defaultBucket string
	logger        *zap.Logger
}

// NewStorageClient builds a client for the hosted object-storage HTTP
// API. The base URL points at the project root; object routes live
// under /storage/v1.
func NewStorageClient(cfg *config.StorageConfig, logger *zap.Logger) repository.StorageRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:       strings.TrimRight(cfg.URL, "/"),
		apiKey:        cfg.APIKey,
		defaultBucket: cfg.DefaultBucket,
		logger:        logger,
	}
}

func (c *client) setAuth(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)
}

func (c *client) Upload(ctx context.Context, bucket, path string, data []byte, contentType string, overwrite bool) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	c.setAuth(req)
	req.Header.Set("Content-Type", contentType)
	if overwrite {
		req.Header.Set("x-upsert", "true")
	}

	c.logger.Debug("Uploading object",
		zap.String("bucket", bucket),
		zap.String("path", path),
		zap.Int("size", len(data)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Storage upload failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("storage upload error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *client) Remove(ctx context.Context, bucket string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s", c.baseURL, bucket)

	payload, err := json.Marshal(map[string][]string{"prefixes": paths})
	if err != nil {
		return fmt.Errorf("failed to marshal remove payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create remove request: %w", err)
	}
	c.setAuth(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute remove request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Storage remove failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("storage remove error: status %d, body: %s", resp.StatusCode, string(body))
	}

	c.logger.Debug("Objects removed",
		zap.String("bucket", bucket),
		zap.Int("count", len(paths)))
	return nil
}

type listRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type listEntry struct {
	Name string `json:"name"`
}

func (c *client) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	url := fmt.Sprintf("%s/storage/v1/object/list/%s", c.baseURL, bucket)

	payload, err := json.Marshal(listRequest{Prefix: prefix, Limit: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal list payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create list request: %w", err)
	}
	c.setAuth(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("storage list error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var entries []listEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			name = strings.TrimRight(prefix, "/") + "/" + name
		}
		keys = append(keys, name)
	}
	return keys, nil
}

func (c *client) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, path)
}

func (c *client) ResolvePublicURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.PublicURL(c.defaultBucket, path)
}
