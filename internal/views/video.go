// Package views 负责将内部 VO 对象转换为 HTTP 响应。
// 该层作为传输层的序列化适配器，隔离业务逻辑与协议细节。
package views

import (
	"github.com/deepencoding/yt-clone-catalog/internal/controllers/dto"
	"github.com/deepencoding/yt-clone-catalog/internal/models/vo"
	"github.com/deepencoding/yt-clone-catalog/internal/services"
)

// NewGenerateUploadURLResponse 将签发结果转换为 HTTP 响应。
func NewGenerateUploadURLResponse(result *services.GenerateUploadURLResult) *dto.GenerateUploadURLResponse {
	if result == nil {
		return &dto.GenerateUploadURLResponse{}
	}
	return &dto.GenerateUploadURLResponse{
		URL:      result.URL,
		FileName: result.FileName,
	}
}

// NewListVideosResponse 将目录条目 VO 转换为 HTTP 响应。
// Videos 永远为非 nil 切片，空目录序列化为 `[]` 而非 `null`。
func NewListVideosResponse(items []vo.VideoItem) *dto.ListVideosResponse {
	videos := make([]dto.VideoItem, 0, len(items))
	for _, item := range items {
		videos = append(videos, dto.VideoItem{
			ID:          item.ID,
			UID:         item.UID,
			Filename:    item.Filename,
			Status:      item.Status,
			Title:       item.Title,
			Description: item.Description,
			CreatedAt:   item.CreatedAt,
		})
	}
	return &dto.ListVideosResponse{Videos: videos}
}
