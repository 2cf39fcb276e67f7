// Package services contains application use case orchestration.
package services

import (
	"context"

	"github.com/deepencoding/yt-clone-catalog/internal/models/po"

	"github.com/go-kratos/kratos/v2/errors"
)

// 错误原因常量，作为结构化错误的 reason 字段对外暴露。
const (
	// ReasonAuthRequired 对应未认证调用：与原始 callable 契约保持一致，
	// 以 failed-precondition 语义返回。
	ReasonAuthRequired     = "FAILED_PRECONDITION"
	ReasonExtensionInvalid = "UPLOAD_EXTENSION_INVALID"
	ReasonSignURLFailed    = "SIGN_UPLOAD_URL_FAILED"
	ReasonQueryFailed      = "QUERY_VIDEOS_FAILED"
	ReasonQueryTimeout     = "QUERY_TIMEOUT"
	ReasonVideoNotFound    = "VIDEO_NOT_FOUND"
	ReasonUserNotFound     = "USER_NOT_FOUND"
)

// ErrAuthRequired 在未认证调用需要身份的操作时返回。
var ErrAuthRequired = errors.New(400, ReasonAuthRequired, "the operation must be called while authenticated")

// ErrVideoNotFound 是当视频未找到时返回的哨兵错误。
var ErrVideoNotFound = errors.NotFound(ReasonVideoNotFound, "video not found")

// ErrUserNotFound 是当用户未找到时返回的哨兵错误。
var ErrUserNotFound = errors.NotFound(ReasonUserNotFound, "user not found")

// VideoRepo 定义 Video 实体的持久化行为接口。
type VideoRepo interface {
	// CreateProcessing 创建 Processing 记录；重复创建返回 created=false。
	CreateProcessing(ctx context.Context, v *po.Video) (created bool, err error)
	// MarkProcessed 单向迁移状态并更新 filename；重复迁移返回 flipped=false。
	MarkProcessed(ctx context.Context, videoID, processedFilename string) (video *po.Video, flipped bool, err error)
	// ListProcessed 返回前 limit 条 Processed 记录，过滤在存储侧强制执行。
	ListProcessed(ctx context.Context, limit int) ([]*po.Video, error)
}

// UserRepo 定义 User 实体的持久化行为接口。
type UserRepo interface {
	// Upsert 幂等写入用户记录。
	Upsert(ctx context.Context, u *po.User) (*po.User, error)
	GetByUID(ctx context.Context, uid string) (*po.User, error)
}
