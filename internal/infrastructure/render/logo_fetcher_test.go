package render_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capfin/sanction-service/internal/infrastructure/render"
)

func TestHTTPAssetFetcher_Fetch(t *testing.T) {
	t.Run("returns the asset body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("logo-bytes"))
		}))
		defer srv.Close()

		data, err := render.NewHTTPAssetFetcher(0).Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []byte("logo-bytes"), data)
	})

	t.Run("fails on a non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := render.NewHTTPAssetFetcher(0).Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("gives up when the server is too slow", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(300 * time.Millisecond)
			w.Write([]byte("late"))
		}))
		defer srv.Close()

		_, err := render.NewHTTPAssetFetcher(20 * time.Millisecond).Fetch(context.Background(), srv.URL)

		require.Error(t, err)
	})
}
