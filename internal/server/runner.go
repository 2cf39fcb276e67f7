package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
)

// Runner 是可被托管的长驻后台任务。Run 阻塞直到 ctx 取消或发生不可恢复错误。
type Runner interface {
	Run(ctx context.Context) error
}

// TaskServer 将 Runner 适配为 kratos transport.Server，
// 使后台消费者与 HTTP 服务器共享同一套启动与优雅退出生命周期。
type TaskServer struct {
	name   string
	runner Runner
	log    *log.Helper
	cancel context.CancelFunc
}

// NewTaskServer 构造 TaskServer。runner 为 nil 时返回 nil，调用方负责过滤。
func NewTaskServer(name string, runner Runner, logger log.Logger) *TaskServer {
	if runner == nil {
		return nil
	}
	return &TaskServer{
		name:   name,
		runner: runner,
		log:    log.NewHelper(logger),
	}
}

// Start 阻塞运行任务，直到 Stop 被调用。
func (s *TaskServer) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.log.Infof("task server starting: %s", s.name)
	if err := s.runner.Run(runCtx); err != nil && runCtx.Err() == nil {
		s.log.Errorf("task server %s exited with error: %v", s.name, err)
		return err
	}
	s.log.Infof("task server stopped: %s", s.name)
	return nil
}

// Stop 取消任务上下文，触发 Run 返回。
func (s *TaskServer) Stop(_ context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}
