// Package controllers 实现 HTTP 传输层 Handler，完成请求解析、超时控制与响应封装。
package controllers

import (
	"context"
	"time"

	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
	"github.com/deepencoding/yt-clone-catalog/internal/metadata"

	kmetadata "github.com/go-kratos/kratos/v2/metadata"
)

// HandlerType 表示 Handler 的语义类别，用于选择超时策略。
type HandlerType int

const (
	// HandlerTypeDefault 表示未显式区分的 Handler。
	HandlerTypeDefault HandlerType = iota
	// HandlerTypeCommand 表示产生副作用的 Handler。
	HandlerTypeCommand
	// HandlerTypeQuery 表示只读查询 Handler。
	HandlerTypeQuery
)

// HandlerTimeouts 聚合不同类型 Handler 的超时策略。
type HandlerTimeouts struct {
	Default time.Duration
	Command time.Duration
	Query   time.Duration
}

const (
	fallbackDefaultTimeout = 5 * time.Second
	fallbackQueryTimeout   = 3 * time.Second
	headerUserID           = "x-md-global-user-id"
	headerIdempotencyKey   = "x-md-idempotency-key"
)

// ProvideHandlerTimeouts 从服务器配置派生 Handler 超时策略。
func ProvideHandlerTimeouts(cfg configloader.ServerConfig) HandlerTimeouts {
	return HandlerTimeouts{
		Default: cfg.Timeout,
		Command: cfg.Timeout,
		Query:   fallbackQueryTimeout,
	}
}

// BaseHandler 提供公共的超时与 Metadata 解析能力，供具体 Handler 内嵌复用。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造基础 Handler，并为缺省值填充合理的回退策略。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Default <= 0 {
		timeouts.Default = fallbackDefaultTimeout
	}
	if timeouts.Command <= 0 {
		timeouts.Command = timeouts.Default
	}
	if timeouts.Query <= 0 {
		timeouts.Query = fallbackQueryTimeout
	}
	return &BaseHandler{timeouts: timeouts}
}

// WithTimeout 根据 Handler 类型包装上下文，返回绑定超时的新 Context 与取消函数。
func (h *BaseHandler) WithTimeout(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	if h == nil {
		return context.WithTimeout(ctx, fallbackDefaultTimeout)
	}
	var timeout time.Duration
	switch kind {
	case HandlerTypeCommand:
		timeout = h.timeouts.Command
	case HandlerTypeQuery:
		timeout = h.timeouts.Query
	default:
		timeout = h.timeouts.Default
	}
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// ExtractMetadata 解析网关注入的受信 Header。
// 身份校验发生在网关侧，服务只信任链路上传递的 x-md-global-user-id。
func (h *BaseHandler) ExtractMetadata(ctx context.Context) metadata.HandlerMetadata {
	md, ok := kmetadata.FromServerContext(ctx)
	if !ok {
		return metadata.HandlerMetadata{}
	}
	return metadata.HandlerMetadata{
		UserID:         md.Get(headerUserID),
		IdempotencyKey: md.Get(headerIdempotencyKey),
	}
}
