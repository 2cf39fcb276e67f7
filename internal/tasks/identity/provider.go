package identity

import (
	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
	"github.com/deepencoding/yt-clone-catalog/internal/services"

	"cloud.google.com/go/pubsub/v2"
	"github.com/go-kratos/kratos/v2/log"
)

// ProvideRunner 装配身份事件 Runner。
// Pub/Sub 客户端缺失或订阅未配置时返回 nil，服务以纯 HTTP 模式运行。
func ProvideRunner(
	client *pubsub.Client,
	cfg configloader.MessagingConfig,
	users *services.UserService,
	logger log.Logger,
) *Runner {
	if client == nil || cfg.IdentitySubscription == "" {
		log.NewHelper(logger).Warn("identity subscription not configured, runner disabled")
		return nil
	}

	runner, err := NewRunner(RunnerParams{
		Subscriber: client.Subscriber(cfg.IdentitySubscription),
		Users:      NewHandler(users, logger),
		Logger:     logger,
	})
	if err != nil {
		log.NewHelper(logger).Errorw("msg", "init identity runner failed", "error", err)
		return nil
	}
	return runner
}
