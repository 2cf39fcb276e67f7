package controllers

import (
	"context"
	"net/http"

	"github.com/deepencoding/yt-clone-catalog/internal/services"
	"github.com/deepencoding/yt-clone-catalog/internal/views"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// VideoQueryHandler 暴露目录查询接口。
type VideoQueryHandler struct {
	*BaseHandler
	svc *services.VideoQueryService
}

// NewVideoQueryHandler 构造 VideoQueryHandler。
func NewVideoQueryHandler(base *BaseHandler, svc *services.VideoQueryService) *VideoQueryHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &VideoQueryHandler{BaseHandler: base, svc: svc}
}

// ListVideos 返回公开目录。目录是公开只读的，不要求认证。
func (h *VideoQueryHandler) ListVideos(ctx khttp.Context) error {
	handler := ctx.Middleware(func(c context.Context, _ any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeQuery)
		defer cancel()

		items, err := h.svc.ListVideos(timeoutCtx)
		if err != nil {
			return nil, err
		}
		return views.NewListVideosResponse(items), nil
	})

	out, err := handler(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}
