package dto

import "time"

// VideoItem 为目录列表中的单个条目。
type VideoItem struct {
	ID          string    `json:"id"`
	UID         string    `json:"uid"`
	Filename    string    `json:"filename"`
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListVideosResponse 为目录查询的响应体。
type ListVideosResponse struct {
	Videos []VideoItem `json:"videos"`
}
