package server_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/deepencoding/yt-clone-catalog/internal/clients"
	"github.com/deepencoding/yt-clone-catalog/internal/controllers"
	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
	"github.com/deepencoding/yt-clone-catalog/internal/models/po"
	"github.com/deepencoding/yt-clone-catalog/internal/server"
	"github.com/deepencoding/yt-clone-catalog/internal/services"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
)

type fixedSigner struct{}

func (fixedSigner) SignedUploadURL(_ context.Context, bucket, objectName string, _ time.Duration) (string, time.Time, error) {
	return fmt.Sprintf("https://storage.example/%s/%s?signature=test", bucket, objectName), time.Now().Add(15 * time.Minute), nil
}

type staticVideoRepo struct {
	mu     sync.Mutex
	videos []*po.Video
}

func (r *staticVideoRepo) CreateProcessing(_ context.Context, v *po.Video) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.videos = append(r.videos, v)
	return true, nil
}

func (r *staticVideoRepo) MarkProcessed(_ context.Context, _, _ string) (*po.Video, bool, error) {
	return nil, false, services.ErrVideoNotFound
}

func (r *staticVideoRepo) ListProcessed(_ context.Context, limit int) ([]*po.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*po.Video, 0, limit)
	for _, v := range r.videos {
		if v.Status == po.VideoStatusProcessed && len(out) < limit {
			out = append(out, v)
		}
	}
	return out, nil
}

func startTestServer(t *testing.T) string {
	t.Helper()

	logger := log.NewStdLogger(io.Discard)
	storageCfg := configloader.StorageConfig{
		RawBucket:    "yt-raw-videos-deepencoding-clone",
		UploadURLTTL: 15 * time.Minute,
	}

	uploadSvc := services.NewUploadURLService(fixedSigner{}, storageCfg, logger)

	repo := &staticVideoRepo{videos: []*po.Video{
		{ID: "u1-1700000000000", UID: "u1", Filename: "processed-u1-1700000000000.mp4", Status: po.VideoStatusProcessed, Title: "first"},
		{ID: "u2-1700000000001", UID: "u2", Filename: "u2-1700000000001.mp4", Status: po.VideoStatusProcessing, Title: "hidden"},
	}}
	querySvc := services.NewVideoQueryService(repo, configloader.CatalogConfig{PageSize: 10}, logger)

	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	upload := controllers.NewUploadHandler(base, uploadSvc)
	query := controllers.NewVideoQueryHandler(base, querySvc)

	tel, telCleanup, err := server.NewTelemetry(logger)
	require.NoError(t, err)
	t.Cleanup(telCleanup)

	srv := server.NewHTTPServer(configloader.ServerConfig{Addr: "127.0.0.1:0"}, upload, query, tel, logger)

	endpoint, err := srv.Endpoint()
	require.NoError(t, err)

	go func() {
		_ = srv.Start(context.Background())
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})

	return endpoint.String()
}

func TestHTTPServer_GenerateUploadURL(t *testing.T) {
	endpoint := startTestServer(t)

	client, cleanup, err := clients.NewCatalogClient(context.Background(), endpoint, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	resp, err := client.GenerateUploadURL(context.Background(), "u123", "mp4")
	require.NoError(t, err)
	require.NotEmpty(t, resp.URL)
	require.Contains(t, resp.URL, resp.FileName)
	require.Contains(t, resp.FileName, "u123-")
	require.Contains(t, resp.FileName, ".mp4")
}

func TestHTTPServer_GenerateUploadURLUnauthenticated(t *testing.T) {
	endpoint := startTestServer(t)

	client, cleanup, err := clients.NewCatalogClient(context.Background(), endpoint, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	_, err = client.GenerateUploadURL(context.Background(), "", "mp4")
	require.Error(t, err)
	require.Equal(t, services.ReasonAuthRequired, kerrors.Reason(err))
}

func TestHTTPServer_ListVideosHidesProcessing(t *testing.T) {
	endpoint := startTestServer(t)

	client, cleanup, err := clients.NewCatalogClient(context.Background(), endpoint, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	resp, err := client.ListVideos(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Videos, 1)
	require.Equal(t, "u1-1700000000000", resp.Videos[0].ID)
	require.Equal(t, string(po.VideoStatusProcessed), resp.Videos[0].Status)
}
