// Package repositories 提供数据访问层实现，负责与持久化存储交互。
// 该层实现 Service 层定义的 Repository 接口，隔离底层存储细节。
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

// videoRepo 是 services.VideoRepo 接口的实现。
type videoRepo struct {
	pool *pgxpool.Pool
	log  *log.Helper
}

// NewVideoRepo 构造 VideoRepo 接口的实现实例。
// 通过 Wire 注入数据库连接池和 logger。
func NewVideoRepo(pool *pgxpool.Pool, logger log.Logger) services.VideoRepo {
	return &videoRepo{
		pool: pool,
		log:  log.NewHelper(logger),
	}
}

// CreateProcessing 为新落盘的原始对象创建 Processing 记录。
// 事件可能重复投递，因此主键冲突视为已处理过，返回 created=false 而非报错。
func (r *videoRepo) CreateProcessing(ctx context.Context, v *po.Video) (bool, error) {
	query := `
		INSERT INTO videos (id, uid, filename, status, title, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		v.ID,
		v.UID,
		v.Filename,
		v.Status,
		v.Title,
		v.Description,
	).Scan(&v.CreatedAt, &v.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// 重复投递：记录已存在，保持原状。
			return false, nil
		}
		r.log.WithContext(ctx).Errorf("CreateProcessing failed: video_id=%s err=%v", v.ID, err)
		return false, fmt.Errorf("insert video: %w", err)
	}

	r.log.WithContext(ctx).Infof("Created video: video_id=%s uid=%s", v.ID, v.UID)
	return true, nil
}

// MarkProcessed 将视频状态从 Processing 迁移到 Processed，并把 filename 指向处理产物。
// 条件更新保证状态只能单向迁移一次；重复事件返回 flipped=false。
// 记录不存在时返回 services.ErrVideoNotFound。
func (r *videoRepo) MarkProcessed(ctx context.Context, videoID, processedFilename string) (*po.Video, bool, error) {
	query := `
		UPDATE videos
		SET status = $2, filename = $3, updated_at = now()
		WHERE id = $1 AND status = $4
		RETURNING id, uid, filename, status, title, description, created_at, updated_at
	`

	var v po.Video
	err := r.pool.QueryRow(ctx, query,
		videoID,
		po.VideoStatusProcessed,
		processedFilename,
		po.VideoStatusProcessing,
	).Scan(&v.ID, &v.UID, &v.Filename, &v.Status, &v.Title, &v.Description, &v.CreatedAt, &v.UpdatedAt)

	if err == nil {
		r.log.WithContext(ctx).Infof("Marked video processed: video_id=%s filename=%s", v.ID, v.Filename)
		return &v, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.log.WithContext(ctx).Errorf("MarkProcessed failed: video_id=%s err=%v", videoID, err)
		return nil, false, fmt.Errorf("mark video processed: %w", err)
	}

	// 没有命中条件更新：要么记录不存在，要么已经是 Processed（重复事件）。
	existing, findErr := r.findByID(ctx, videoID)
	if findErr != nil {
		return nil, false, findErr
	}
	return existing, false, nil
}

// ListProcessed 返回状态为 Processed 的前 limit 条记录，按存储顺序排列。
// 过滤条件在 SQL 中强制执行，Processing 记录绝不出现在结果里。
func (r *videoRepo) ListProcessed(ctx context.Context, limit int) ([]*po.Video, error) {
	query := `
		SELECT id, uid, filename, status, title, description, created_at, updated_at
		FROM videos
		WHERE status = $1
		ORDER BY created_at, id
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, po.VideoStatusProcessed, limit)
	if err != nil {
		r.log.WithContext(ctx).Errorf("ListProcessed failed: %v", err)
		return nil, fmt.Errorf("query processed videos: %w", err)
	}
	defer rows.Close()

	var videos []*po.Video
	for rows.Next() {
		var v po.Video
		if err := rows.Scan(&v.ID, &v.UID, &v.Filename, &v.Status, &v.Title, &v.Description, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan video row: %w", err)
		}
		videos = append(videos, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate video rows: %w", err)
	}

	return videos, nil
}

// findByID 根据 id 查询视频记录，查询不到时返回 services.ErrVideoNotFound。
func (r *videoRepo) findByID(ctx context.Context, videoID string) (*po.Video, error) {
	query := `
		SELECT id, uid, filename, status, title, description, created_at, updated_at
		FROM videos
		WHERE id = $1
	`

	var v po.Video
	err := r.pool.QueryRow(ctx, query, videoID).Scan(
		&v.ID, &v.UID, &v.Filename, &v.Status, &v.Title, &v.Description, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, services.ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("findByID failed: video_id=%s err=%v", videoID, err)
		return nil, fmt.Errorf("query video by id: %w", err)
	}

	return &v, nil
}
