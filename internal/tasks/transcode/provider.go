package transcode

import (
	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
	"github.com/deepencoding/yt-clone-catalog/internal/services"

	"cloud.google.com/go/pubsub/v2"
	"github.com/go-kratos/kratos/v2/log"
)

// ProvideRunner 装配转码完成 Runner。
// Pub/Sub 客户端缺失或订阅未配置时返回 nil，服务以纯 HTTP 模式运行。
func ProvideRunner(
	client *pubsub.Client,
	cfg configloader.MessagingConfig,
	lifecycle *services.VideoLifecycleService,
	logger log.Logger,
) *Runner {
	if client == nil || cfg.ProcessedSubscription == "" {
		log.NewHelper(logger).Warn("processed subscription not configured, runner disabled")
		return nil
	}

	runner, err := NewRunner(RunnerParams{
		Subscriber: client.Subscriber(cfg.ProcessedSubscription),
		Handler:    NewHandler(lifecycle, logger),
		Logger:     logger,
	})
	if err != nil {
		log.NewHelper(logger).Errorw("msg", "init transcode runner failed", "error", err)
		return nil
	}
	return runner
}
