package identity

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	"github.com/go-kratos/kratos/v2/log"
)

// Runner 负责消费用户创建事件。
type Runner struct {
	subscriber *pubsub.Subscriber
	decoder    *eventDecoder
	handler    *Handler
	log        *log.Helper
}

// RunnerParams 注入构建 Runner 所需的依赖。
type RunnerParams struct {
	Subscriber *pubsub.Subscriber
	Users      *Handler
	Logger     log.Logger
}

// NewRunner 构造身份事件 Runner。
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Subscriber == nil {
		return nil, fmt.Errorf("identity: subscriber is required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("identity: handler is required")
	}

	return &Runner{
		subscriber: params.Subscriber,
		decoder:    newDecoder(),
		handler:    params.Users,
		log:        log.NewHelper(params.Logger),
	}, nil
}

// Run 启动消费循环，阻塞直到 ctx 取消。
// 解码失败的消息直接 Ack 丢弃，避免毒消息无限重投；
// 业务处理失败则 Nack 等待重投。
func (r *Runner) Run(ctx context.Context) error {
	return r.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		evt, err := r.decoder.Decode(msg.Data)
		if err != nil {
			r.log.WithContext(ctx).Warnf("identity: drop undecodable message: %v", err)
			msg.Ack()
			return
		}

		if err := r.handler.Handle(ctx, evt); err != nil {
			r.log.WithContext(ctx).Errorf("identity: handle event uid=%s: %v", evt.UID, err)
			msg.Nack()
			return
		}
		msg.Ack()
	})
}
