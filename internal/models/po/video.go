// Package po 定义面向持久化的数据对象（Persistent Objects），由 Repository 层使用。
// PO 对象映射数据库表结构，不直接暴露给上层业务逻辑。
package po

import "time"

// VideoStatus 表示视频的处理状态。
type VideoStatus string

// 视频状态常量定义。状态只允许单向迁移：Processing → Processed。
const (
	VideoStatusProcessing VideoStatus = "Processing" // 原始文件已落盘，转码流水线尚未完成
	VideoStatusProcessed  VideoStatus = "Processed"  // 转码完成，可对外播放
)

// Video 表示 videos 表的数据库实体。
// ID 与 Filename 由上传对象键派生：`{uid}-{epoch_ms}.{ext}`。
type Video struct {
	ID          string      `db:"id"`          // 主键（对象键去掉扩展名）
	UID         string      `db:"uid"`         // 上传者用户 ID（身份提供方的不透明 ID）
	Filename    string      `db:"filename"`    // 关联原始对象与处理产物的稳定键
	Status      VideoStatus `db:"status"`      // 处理状态
	Title       string      `db:"title"`       // 视频标题
	Description *string     `db:"description"` // 视频描述（可选）
	CreatedAt   time.Time   `db:"created_at"`  // 记录创建时间
	UpdatedAt   time.Time   `db:"updated_at"`  // 最近更新时间
}
