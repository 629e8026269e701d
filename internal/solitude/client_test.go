package solitude

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, maxRetries int) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	rc, err := NewRetryClient("none", "", 5*time.Second, false,
		maxRetries, time.Millisecond, 5*time.Millisecond, "X-API-Secret")
	require.NoError(t, err)
	return New(server.URL+"/", rc, nil, nil)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_CreateGenericSeller(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generic/seller/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "seller-uuid", body["uuid"])

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"resource_uri": "/generic/seller/7/",
			"resource_pk":  7,
		})
	}, 0)

	obj, err := c.CreateGenericSeller(context.Background(), "seller-uuid")
	require.NoError(t, err)
	assert.Equal(t, "/generic/seller/7/", obj.URI())
	assert.Equal(t, "7", obj.String("resource_pk"))
}

func TestClient_GetGenericProduct(t *testing.T) {
	t.Run("single match", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/generic/product/", r.URL.Path)
			assert.Equal(t, "pub-1", r.URL.Query().Get("public_id"))
			writeJSON(t, w, http.StatusOK, map[string]any{
				"meta":    map[string]any{"total_count": 1},
				"objects": []any{map[string]any{"resource_uri": "/generic/product/3/"}},
			})
		}, 0)

		obj, err := c.GetGenericProduct(context.Background(), "pub-1")
		require.NoError(t, err)
		assert.Equal(t, "/generic/product/3/", obj.URI())
	})

	t.Run("no match", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"objects": []any{}})
		}, 0)

		_, err := c.GetGenericProduct(context.Background(), "pub-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("several matches", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"objects": []any{
				map[string]any{"resource_uri": "/generic/product/3/"},
				map[string]any{"resource_uri": "/generic/product/4/"},
			}})
		}, 0)

		_, err := c.GetGenericProduct(context.Background(), "pub-1")
		assert.ErrorIs(t, err, ErrMultipleObjects)
	})
}

func TestClient_GetBangoPackage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bango/package/42/", r.URL.Path)
		assert.Equal(t, "True", r.URL.Query().Get("full"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"resource_uri": "/bango/package/42/",
			"full":         map[string]any{"vendorName": "Acme"},
		})
	}, 0)

	obj, err := c.GetBangoPackage(context.Background(), "/bango/package/42/", true)
	require.NoError(t, err)
	assert.Equal(t, "Acme", obj.Object("full").String("vendorName"))
}

func TestClient_PatchByURI(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/bango/package/42/", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "New Vendor", body["vendorName"])
		w.WriteHeader(http.StatusAccepted)
	}, 0)

	obj, err := c.PatchByURI(context.Background(), "/bango/package/42/",
		Object{"vendorName": "New Vendor"})
	require.NoError(t, err)
	assert.Empty(t, obj)
}

func TestClient_ReferenceSeller(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/provider/reference/sellers/5/", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, map[string]any{
				"id":        5,
				"reference": map[string]any{"name": "Dev"},
			})
		case http.MethodPut:
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeJSON(t, w, http.StatusOK, body)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}, 0)

	ctx := context.Background()
	obj, err := c.GetReferenceSeller(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "Dev", obj.Object("reference").String("name"))

	updated, err := c.PutReferenceSeller(ctx, "5", Object{"agreement": "2026-01-02"})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02", updated.String("agreement"))
}

func TestClient_Errors(t *testing.T) {
	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}, 0)
		_, err := c.GetReferenceTerms(context.Background(), "9")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("4xx carries status and body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"uuid":["required"]}`))
		}, 0)
		_, err := c.CreateReferenceSeller(context.Background(), Object{})

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Contains(t, apiErr.Body, "required")
	})

	t.Run("non-json body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}, 0)
		_, err := c.GetReferenceSeller(context.Background(), "1")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 1})
	}, 3)

	obj, err := c.GetReferenceSeller(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", obj.String("id"))
	assert.Equal(t, int32(3), calls.Load())
}

func TestPK(t *testing.T) {
	assert.Equal(t, "42", PK("/bango/package/42/"))
	assert.Equal(t, "42", PK("/bango/package/42"))
	assert.Equal(t, "abc", PK("abc"))
}
