package ingest

import (
	"context"
	"fmt"

	"github.com/deepencoding/yt-clone-catalog/internal/services"

	"github.com/go-kratos/kratos/v2/log"
)

// Handler 处理原始上传事件，创建 Processing 目录条目。
type Handler struct {
	lifecycle *services.VideoLifecycleService
	log       *log.Helper
}

// NewHandler 构造原始上传事件处理器。
func NewHandler(lifecycle *services.VideoLifecycleService, logger log.Logger) *Handler {
	if logger == nil {
		logger = log.NewStdLogger(nil)
	}
	return &Handler{
		lifecycle: lifecycle,
		log:       log.NewHelper(logger),
	}
}

// Handle 执行 OBJECT_FINALIZE 事件的业务处理。
func (h *Handler) Handle(ctx context.Context, evt *Event) error {
	if evt == nil {
		return fmt.Errorf("ingest: nil event payload")
	}
	if h.lifecycle == nil {
		return fmt.Errorf("ingest: handler not initialized")
	}

	if err := h.lifecycle.RegisterRawUpload(ctx, evt.Bucket, evt.ObjectName); err != nil {
		return fmt.Errorf("ingest: register raw upload: %w", err)
	}
	return nil
}
