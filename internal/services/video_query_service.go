package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
	"github.com/deepencoding/yt-clone-catalog/internal/models/vo"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// VideoQueryService 封装目录只读用例。
type VideoQueryService struct {
	repo     VideoRepo
	pageSize int
	log      *log.Helper
}

// NewVideoQueryService 构造视频查询服务。
func NewVideoQueryService(repo VideoRepo, cfg configloader.CatalogConfig, logger log.Logger) *VideoQueryService {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &VideoQueryService{
		repo:     repo,
		pageSize: pageSize,
		log:      log.NewHelper(logger),
	}
}

// ListVideos 返回对外可见的目录：状态为 Processed 的前 N 条记录。
// 无需认证；不暴露分页游标，始终返回存储顺序下的第一页。
func (s *VideoQueryService) ListVideos(ctx context.Context) ([]vo.VideoItem, error) {
	videos, err := s.repo.ListProcessed(ctx, s.pageSize)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.log.WithContext(ctx).Warn("list videos timeout")
			return nil, kerrors.GatewayTimeout(ReasonQueryTimeout, "query timeout")
		}
		s.log.WithContext(ctx).Errorf("list videos failed: %v", err)
		return nil, kerrors.InternalServer(ReasonQueryFailed, "failed to query videos").WithCause(fmt.Errorf("list processed videos: %w", err))
	}

	s.log.WithContext(ctx).Debugf("ListVideos: returned=%d page_size=%d", len(videos), s.pageSize)
	return vo.NewVideoItems(videos), nil
}
