package transcode

import (
	"context"
	"fmt"

	"github.com/deepencoding/yt-clone-catalog/internal/services"

	"github.com/go-kratos/kratos/v2/log"
)

// Handler 处理转码完成事件，将目录条目翻转为 Processed。
type Handler struct {
	lifecycle *services.VideoLifecycleService
	log       *log.Helper
}

// NewHandler 构造转码完成事件处理器。
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
		return fmt.Errorf("transcode: nil event payload")
	}
	if h.lifecycle == nil {
		return fmt.Errorf("transcode: handler not initialized")
	}

	if err := h.lifecycle.MarkProcessed(ctx, evt.Bucket, evt.ObjectName); err != nil {
		return fmt.Errorf("transcode: mark processed: %w", err)
	}
	return nil
}
