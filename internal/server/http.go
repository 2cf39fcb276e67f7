// Package server 组装传输层服务器与后台任务宿主。
package server

import (
	stdhttp "net/http"

	"github.com/deepencoding/yt-clone-catalog/internal/controllers"
	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	kmetrics "github.com/go-kratos/kratos/v2/middleware/metrics"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPServer 构造 HTTP 服务器并注册全部路由。
func NewHTTPServer(
	c configloader.ServerConfig,
	upload *controllers.UploadHandler,
	query *controllers.VideoQueryHandler,
	tel *Telemetry,
	logger log.Logger,
) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			metadata.Server(),
			kmetrics.Server(
				kmetrics.WithRequests(tel.RequestCounter),
				kmetrics.WithSeconds(tel.SecondsHistogram),
			),
			logging.Server(logger),
		),
	}
	if c.Network != "" {
		opts = append(opts, http.Network(c.Network))
	}
	if c.Addr != "" {
		opts = append(opts, http.Address(c.Addr))
	}
	if c.Timeout > 0 {
		opts = append(opts, http.Timeout(c.Timeout))
	}

	srv := http.NewServer(opts...)

	srv.Handle("/healthz", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
	}))

	srv.Handle("/readyz", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		// 预留 readiness 校验钩子：若未来需要检查数据库等依赖，可在此处扩展。
		w.WriteHeader(stdhttp.StatusOK)
	}))

	srv.Handle("/metrics", promhttp.HandlerFor(tel.PrometheusRegistry, promhttp.HandlerOpts{}))

	r := srv.Route("/")
	r.POST("/v1/videos:generateUploadUrl", upload.GenerateUploadURL)
	r.GET("/v1/videos", query.ListVideos)

	return srv
}
