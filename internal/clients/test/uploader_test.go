package clients_test

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/deepencoding/yt-clone-catalog/internal/clients"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
)

func init() {
	// 系统 mime.types 缺失时 .mp4 不在内建表里，显式注册保证断言稳定。
	_ = mime.AddExtensionType(".mp4", "video/mp4")
}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestUploader_PutsFileToSignedURL(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotBody        []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	path := writeTempFile(t, "clip.mp4", []byte("fake-video-bytes"))
	uploader := clients.NewUploader(log.DefaultLogger)

	err := uploader.Upload(context.Background(), server.URL, path)
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "video/mp4", gotContentType)
	require.Equal(t, []byte("fake-video-bytes"), gotBody)
}

func TestUploader_UnknownExtensionFallsBack(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	path := writeTempFile(t, "clip.rawvideo", []byte("bytes"))
	uploader := clients.NewUploader(log.DefaultLogger)

	require.NoError(t, uploader.Upload(context.Background(), server.URL, path))
	require.Equal(t, "application/octet-stream", gotContentType)
}

func TestUploader_StorageErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("SignatureDoesNotMatch"))
	}))
	defer server.Close()

	path := writeTempFile(t, "clip.mp4", []byte("bytes"))
	uploader := clients.NewUploader(log.DefaultLogger)

	err := uploader.Upload(context.Background(), server.URL, path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}

func TestUploader_MissingFile(t *testing.T) {
	uploader := clients.NewUploader(log.DefaultLogger)
	err := uploader.Upload(context.Background(), "http://unused.example", filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
}
