// Package vo 定义视图对象（View Objects），用于向上层传递业务数据。
// VO 对象由 Service 层返回，经 Views 层转换为 API 响应，隔离内部数据结构。
package vo

import (
	"time"

	"github.com/deepencoding/yt-clone-catalog/internal/models/po"
)

// VideoItem 封装目录列表里的单个视频条目。
type VideoItem struct {
	ID          string    `json:"id"`
	UID         string    `json:"uid"`
	Filename    string    `json:"filename"`
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewVideoItem 从数据库实体构造目录条目 VO。
func NewVideoItem(video *po.Video) VideoItem {
	if video == nil {
		return VideoItem{}
	}
	return VideoItem{
		ID:          video.ID,
		UID:         video.UID,
		Filename:    video.Filename,
		Status:      string(video.Status),
		Title:       video.Title,
		Description: video.Description,
		CreatedAt:   video.CreatedAt,
	}
}

// NewVideoItems 批量转换目录条目。
func NewVideoItems(videos []*po.Video) []VideoItem {
	items := make([]VideoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, NewVideoItem(v))
	}
	return items
}
