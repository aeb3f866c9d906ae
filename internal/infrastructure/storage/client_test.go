package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travel-admin/internal/config"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) *client {
	cfg := &config.StorageConfig{
		URL:            serverURL,
		APIKey:         "test_key",
		DefaultBucket:  "site-images",
		RequestTimeout: 5,
	}
	return NewStorageClient(cfg, zap.NewNop()).(*client)
}

func TestClient_Upload(t *testing.T) {
	t.Run("successful upload", func(t *testing.T) {
		var gotMethod, gotPath, gotAuth, gotContentType, gotUpsert string
		var gotBody []byte

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			gotUpsert = r.Header.Get("x-upsert")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		err := c.Upload(context.Background(), "site-images", "hero/banner-1712.jpg", []byte("image-bytes"), "image/jpeg", true)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/storage/v1/object/site-images/hero/banner-1712.jpg", gotPath)
		assert.Equal(t, "Bearer test_key", gotAuth)
		assert.Equal(t, "image/jpeg", gotContentType)
		assert.Equal(t, "true", gotUpsert)
		assert.Equal(t, []byte("image-bytes"), gotBody)
	})

	t.Run("no upsert header without overwrite", func(t *testing.T) {
		var gotUpsert string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUpsert = r.Header.Get("x-upsert")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		err := c.Upload(context.Background(), "site-images", "logo/logo-1.svg", []byte("<svg/>"), "image/svg+xml", false)

		require.NoError(t, err)
		assert.Empty(t, gotUpsert)
	})

	t.Run("server error surfaces status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"invalid key"}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		err := c.Upload(context.Background(), "site-images", "hero/x.jpg", []byte("x"), "image/jpeg", false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
		assert.Contains(t, err.Error(), "invalid key")
	})
}

func TestClient_Remove(t *testing.T) {
	t.Run("sends prefixes payload", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotPayload map[string][]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotPayload)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		err := c.Remove(context.Background(), "site-images", []string{"hero/a.jpg", "hero/b.jpg"})

		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/storage/v1/object/site-images", gotPath)
		assert.Equal(t, []string{"hero/a.jpg", "hero/b.jpg"}, gotPayload["prefixes"])
	})

	t.Run("empty path list is a no-op", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		err := c.Remove(context.Background(), "site-images", nil)

		require.NoError(t, err)
		assert.False(t, called)
	})
}

func TestClient_List(t *testing.T) {
	t.Run("prefixes returned keys", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/storage/v1/object/list/site-images", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]listEntry{
				{Name: "logo-1700.svg"},
				{Name: "logo-1800.png"},
			})
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		keys, err := c.List(context.Background(), "site-images", "logo/")

		require.NoError(t, err)
		assert.Equal(t, []string{"logo/logo-1700.svg", "logo/logo-1800.png"}, keys)
	})
}

func TestClient_PublicURL(t *testing.T) {
	c := newTestClient("https://project.example.co")

	t.Run("builds public object url", func(t *testing.T) {
		url := c.PublicURL("site-images", "hero/banner.jpg")
		assert.Equal(t, "https://project.example.co/storage/v1/object/public/site-images/hero/banner.jpg", url)
	})

	t.Run("resolve empty path", func(t *testing.T) {
		assert.Equal(t, "", c.ResolvePublicURL(""))
	})

	t.Run("resolve absolute url passes through", func(t *testing.T) {
		assert.Equal(t, "https://cdn.example.com/x.jpg", c.ResolvePublicURL("https://cdn.example.com/x.jpg"))
	})

	t.Run("resolve relative path uses default bucket", func(t *testing.T) {
		assert.Equal(t,
			"https://project.example.co/storage/v1/object/public/site-images/map/turkey.png",
			c.ResolvePublicURL("map/turkey.png"))
	})
}
