// Package dto 定义 HTTP 层的请求与响应结构，隔离协议字段命名与内部模型。
package dto

// GenerateUploadURLRequest 为签发上传 URL 的请求体。
type GenerateUploadURLRequest struct {
	FileExtension string `json:"fileExtension"`
}

// GenerateUploadURLResponse 为签发上传 URL 的响应体。
// 字段命名与客户端既有契约保持一致。
type GenerateUploadURLResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}
