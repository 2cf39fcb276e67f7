package controllers

import (
	"context"
	"net/http"

	"github.com/deepencoding/yt-clone-catalog/internal/controllers/dto"
	"github.com/deepencoding/yt-clone-catalog/internal/metadata"
	"github.com/deepencoding/yt-clone-catalog/internal/services"
	"github.com/deepencoding/yt-clone-catalog/internal/views"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// UploadHandler 暴露上传 URL 签发接口。
type UploadHandler struct {
	*BaseHandler
	svc *services.UploadURLService
}

// NewUploadHandler 构造 UploadHandler。
func NewUploadHandler(base *BaseHandler, svc *services.UploadURLService) *UploadHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &UploadHandler{BaseHandler: base, svc: svc}
}

// GenerateUploadURL 处理签发请求：解析网关注入的身份，
// 未认证调用直接拒绝，不触达签名器。
func (h *UploadHandler) GenerateUploadURL(ctx khttp.Context) error {
	var req dto.GenerateUploadURLRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	handler := ctx.Middleware(func(c context.Context, in any) (any, error) {
		r := in.(*dto.GenerateUploadURLRequest)

		meta := h.ExtractMetadata(c)
		if !meta.Authenticated() {
			return nil, services.ErrAuthRequired
		}

		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeCommand)
		defer cancel()
		timeoutCtx = metadata.Inject(timeoutCtx, meta)

		result, err := h.svc.GenerateUploadURL(timeoutCtx, services.GenerateUploadURLInput{
			UserID:        meta.UserID,
			FileExtension: r.FileExtension,
		})
		if err != nil {
			return nil, err
		}
		return views.NewGenerateUploadURLResponse(result), nil
	})

	out, err := handler(ctx, &req)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}
