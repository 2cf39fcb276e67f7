package services

import (
	"context"
	"fmt"

	"github.com/deepencoding/yt-clone-catalog/internal/models/po"

	"github.com/go-kratos/kratos/v2/log"
)

// RegisterUserInput 为用户注册事件的服务层输入。
type RegisterUserInput struct {
	UID      string
	Email    *string
	PhotoURL *string
}

// UserService 实现身份事件驱动的用户档案写入用例。
type UserService struct {
	repo UserRepo
	log  *log.Helper
}

// NewUserService 构造 UserService。
func NewUserService(repo UserRepo, logger log.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// RegisterUser 幂等记录一个新注册的用户。
// 身份事件至少投递一次，重复投递时以最新载荷覆盖可变字段。
func (s *UserService) RegisterUser(ctx context.Context, input RegisterUserInput) error {
	if input.UID == "" {
		s.log.WithContext(ctx).Warn("register user: empty uid, dropping event")
		return nil
	}

	user, err := s.repo.Upsert(ctx, &po.User{
		UID:      input.UID,
		Email:    input.Email,
		PhotoURL: input.PhotoURL,
	})
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", input.UID, err)
	}

	s.log.WithContext(ctx).Infof("registered user: uid=%s created_at=%s", user.UID, user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
	return nil
}

// GetUser 按 UID 查询用户档案。
func (s *UserService) GetUser(ctx context.Context, uid string) (*po.User, error) {
	return s.repo.GetByUID(ctx, uid)
}
