package ingest

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub/v2"
	"github.com/go-kratos/kratos/v2/log"
)

const gcsObjectFinalizeEvent = "OBJECT_FINALIZE"

// Runner 负责消费原始桶的对象通知。
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

// NewRunner 构造原始上传 Runner。
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Subscriber == nil {
		return nil, fmt.Errorf("ingest: subscriber is required")
	}
	if params.Handler == nil {
		return nil, fmt.Errorf("ingest: handler is required")
	}

	return &Runner{
		subscriber: params.Subscriber,
		decoder:    newDecoder(),
		handler:    params.Handler,
		log:        log.NewHelper(params.Logger),
	}, nil
}

// Run 启动消费循环，阻塞直到 ctx 取消。
// 非 OBJECT_FINALIZE 通知与解码失败的消息直接 Ack 丢弃；
// 业务处理失败则 Nack 等待重投。
func (r *Runner) Run(ctx context.Context) error {
	return r.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		if evtType := msg.Attributes["eventType"]; evtType != "" && !strings.EqualFold(evtType, gcsObjectFinalizeEvent) {
			msg.Ack()
			return
		}

		evt, err := r.decoder.Decode(msg.Data)
		if err != nil {
			r.log.WithContext(ctx).Warnf("ingest: drop undecodable message: %v", err)
			msg.Ack()
			return
		}

		if err := r.handler.Handle(ctx, evt); err != nil {
			r.log.WithContext(ctx).Errorf("ingest: handle event object=%s: %v", evt.ObjectName, err)
			msg.Nack()
			return
		}
		msg.Ack()
	})
}
