package identity

import (
	"context"
	"fmt"

	"github.com/deepencoding/yt-clone-catalog/internal/services"

	"github.com/go-kratos/kratos/v2/log"
)

// Handler 处理用户创建事件，幂等写入用户档案。
type Handler struct {
	users *services.UserService
	log   *log.Helper
}

// NewHandler 构造身份事件处理器。
func NewHandler(users *services.UserService, logger log.Logger) *Handler {
	if logger == nil {
		logger = log.NewStdLogger(nil)
	}
	return &Handler{
		users: users,
		log:   log.NewHelper(logger),
	}
}

// Handle 执行用户创建事件的业务处理。
func (h *Handler) Handle(ctx context.Context, evt *Event) error {
	if evt == nil {
		return fmt.Errorf("identity: nil event payload")
	}
	if h.users == nil {
		return fmt.Errorf("identity: handler not initialized")
	}

	if err := h.users.RegisterUser(ctx, services.RegisterUserInput{
		UID:      evt.UID,
		Email:    evt.Email,
		PhotoURL: evt.PhotoURL,
	}); err != nil {
		return fmt.Errorf("identity: register user: %w", err)
	}
	return nil
}
