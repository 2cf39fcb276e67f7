// Package clients 包含调用目录服务与存储的客户端门面，封装 HTTP 调用细节。
package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/deepencoding/yt-clone-catalog/internal/controllers/dto"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/metadata"
	mdmiddleware "github.com/go-kratos/kratos/v2/middleware/metadata"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

const (
	headerUserID         = "x-md-global-user-id"
	headerIdempotencyKey = "x-md-idempotency-key"
)

// CatalogClient 封装目录服务的 HTTP 接口。
type CatalogClient struct {
	hc  *khttp.Client
	log *log.Helper
}

// NewCatalogClient 构造目录服务客户端。返回的 cleanup 负责关闭底层连接。
func NewCatalogClient(ctx context.Context, endpoint string, logger log.Logger) (*CatalogClient, func(), error) {
	conn, err := khttp.NewClient(ctx,
		khttp.WithEndpoint(endpoint),
		khttp.WithMiddleware(mdmiddleware.Client()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("dial catalog %s: %w", endpoint, err)
	}

	cleanup := func() {
		_ = conn.Close()
	}
	return &CatalogClient{
		hc:  conn,
		log: log.NewHelper(logger),
	}, cleanup, nil
}

// GenerateUploadURL 以 userID 的身份请求签发上传 URL。
// 身份通过受信 Header 传递，幂等键由客户端生成。
func (c *CatalogClient) GenerateUploadURL(ctx context.Context, userID, fileExtension string) (*dto.GenerateUploadURLResponse, error) {
	ctx = metadata.AppendToClientContext(ctx,
		headerUserID, userID,
		headerIdempotencyKey, uuid.NewString(),
	)

	req := &dto.GenerateUploadURLRequest{FileExtension: fileExtension}
	var resp dto.GenerateUploadURLResponse
	if err := c.hc.Invoke(ctx, http.MethodPost, "/v1/videos:generateUploadUrl", req, &resp); err != nil {
		return nil, fmt.Errorf("generate upload url: %w", err)
	}
	return &resp, nil
}

// ListVideos 拉取公开目录。
func (c *CatalogClient) ListVideos(ctx context.Context) (*dto.ListVideosResponse, error) {
	var resp dto.ListVideosResponse
	if err := c.hc.Invoke(ctx, http.MethodGet, "/v1/videos", nil, &resp); err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return &resp, nil
}
