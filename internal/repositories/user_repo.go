package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepencoding/yt-clone-catalog/internal/models/po"
	"github.com/deepencoding/yt-clone-catalog/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// userRepo 是 services.UserRepo 接口的实现。
type userRepo struct {
	pool *pgxpool.Pool
	log  *log.Helper
}

// NewUserRepo 构造 UserRepo 接口的实现实例。
func NewUserRepo(pool *pgxpool.Pool, logger log.Logger) services.UserRepo {
	return &userRepo{
		pool: pool,
		log:  log.NewHelper(logger),
	}
}

// Upsert 写入用户记录。身份创建事件按 at-least-once 投递，
// 重复执行对同一 uid 不产生重复记录，也不破坏已有数据。
func (r *userRepo) Upsert(ctx context.Context, u *po.User) (*po.User, error) {
	query := `
		INSERT INTO users (uid, email, photo_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO UPDATE
		SET email = EXCLUDED.email, photo_url = EXCLUDED.photo_url
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query, u.UID, u.Email, u.PhotoURL).Scan(&u.CreatedAt)
	if err != nil {
		r.log.WithContext(ctx).Errorf("Upsert user failed: uid=%s err=%v", u.UID, err)
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	r.log.WithContext(ctx).Infof("Upserted user: uid=%s", u.UID)
	return u, nil
}

// GetByUID 根据 uid 查询用户记录，查询不到时返回 services.ErrUserNotFound。
func (r *userRepo) GetByUID(ctx context.Context, uid string) (*po.User, error) {
	query := `
		SELECT uid, email, photo_url, created_at
		FROM users
		WHERE uid = $1
	`

	var u po.User
	err := r.pool.QueryRow(ctx, query, uid).Scan(&u.UID, &u.Email, &u.PhotoURL, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, services.ErrUserNotFound
		}
		r.log.WithContext(ctx).Errorf("GetByUID failed: uid=%s err=%v", uid, err)
		return nil, fmt.Errorf("query user by uid: %w", err)
	}

	return &u, nil
}
