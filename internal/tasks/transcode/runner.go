package transcode

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub/v2"
	"github.com/go-kratos/kratos/v2/log"
)

const gcsObjectFinalizeEvent = "OBJECT_FINALIZE"

// Runner 负责消费处理桶的对象通知。
type Runner struct {
	subscriber *pubsub.Subscriber
	decoder    *eventDecoder
	handler    *Handler
	log        *log.Helper
}

// RunnerParams 注入构建 Runner 所需的依赖。
type RunnerParams struct {
	Subscriber *pubsub.Subscriber
	Handler    *Handler
	Logger     log.Logger
}

// NewRunner 构造转码完成 Runner。
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Subscriber == nil {
		return nil, fmt.Errorf("transcode: subscriber is required")
	}
	if params.Handler == nil {
		return nil, fmt.Errorf("transcode: handler is required")
	}

	return &Runner{
		subscriber: params.Subscriber,
		decoder:    newDecoder(),
		handler:    params.Handler,
		log:        log.NewHelper(params.Logger),
	}, nil
}

// Run 启动消费循环，阻塞直到 ctx 取消。
// 条目尚未创建时 Handle 返回错误并 Nack，依赖重投等待
// 原始上传事件先行落地。
func (r *Runner) Run(ctx context.Context) error {
	return r.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		if evtType := msg.Attributes["eventType"]; evtType != "" && !strings.EqualFold(evtType, gcsObjectFinalizeEvent) {
			msg.Ack()
			return
		}

		evt, err := r.decoder.Decode(msg.Data)
		if err != nil {
			r.log.WithContext(ctx).Warnf("transcode: drop undecodable message: %v", err)
			msg.Ack()
			return
		}

		if err := r.handler.Handle(ctx, evt); err != nil {
			r.log.WithContext(ctx).Errorf("transcode: handle event object=%s: %v", evt.ObjectName, err)
			msg.Nack()
			return
		}
		msg.Ack()
	})
}
