// Package gcpubsub 负责 Pub/Sub 客户端的初始化与生命周期管理。
package gcpubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
)

// NewClient 创建 Pub/Sub 客户端。
// messaging.project_id 未配置时返回 nil 客户端，下游 Runner 相应不启用。
func NewClient(ctx context.Context, cfg configloader.MessagingConfig, logger log.Logger) (*pubsub.Client, func(), error) {
	helper := log.NewHelper(logger)

	if cfg.ProjectID == "" {
		helper.Warn("messaging.project_id not configured; event runners disabled")
		return nil, func() {}, nil
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("create pubsub client: %w", err)
	}

	helper.Infof("pubsub client created: project=%s", cfg.ProjectID)

	cleanup := func() {
		helper.Info("closing pubsub client")
		_ = client.Close()
	}
	return client, cleanup, nil
}
