// Package metadata 提供 HandlerMetadata 在 Context 中的存取工具，供控制器与服务层共享。
package metadata

import (
	"context"
	"strings"
)

// HandlerMetadata 描述从请求头或上游链路解析出的上下文信息。
// UserID 为身份提供方的不透明 ID，由网关校验后通过受信 Header 注入。
type HandlerMetadata struct {
	IdempotencyKey string
	UserID         string
}

// IsZero 判断 Metadata 是否为空。
func (m HandlerMetadata) IsZero() bool {
	return m.IdempotencyKey == "" && m.UserID == ""
}

// Authenticated 判断请求是否携带已校验的用户身份。
func (m HandlerMetadata) Authenticated() bool {
	return strings.TrimSpace(m.UserID) != ""
}

type ctxKey struct{}

// Inject 将 HandlerMetadata 注入 Context。
func Inject(ctx context.Context, meta HandlerMetadata) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 HandlerMetadata。
func FromContext(ctx context.Context) (HandlerMetadata, bool) {
	if ctx == nil {
		return HandlerMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(HandlerMetadata)
	return meta, ok
}
