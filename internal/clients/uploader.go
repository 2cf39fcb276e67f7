package clients

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

const defaultUploadTimeout = 10 * time.Minute

// Uploader 通过签名 URL 将本地文件直传到对象存储。
// 签名 URL 携带完整授权，直传不经过目录服务，
// 这里用原生 HTTP PUT 发送原始字节流。
type Uploader struct {
	httpClient *http.Client
	log        *log.Helper
}

// NewUploader 构造 Uploader。
func NewUploader(logger log.Logger) *Uploader {
	return &Uploader{
		httpClient: &http.Client{Timeout: defaultUploadTimeout},
		log:        log.NewHelper(logger),
	}
}

// Upload 将 filePath 指向的文件 PUT 到 signedURL。
func (u *Uploader) Upload(ctx context.Context, signedURL, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", filePath, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, f)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = stat.Size()
	req.Header.Set("Content-Type", contentType)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload %s: %w", filePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("upload %s: storage returned %d: %s", filePath, resp.StatusCode, body)
	}

	u.log.WithContext(ctx).Infof("uploaded %s (%d bytes, %s)", filepath.Base(filePath), stat.Size(), contentType)
	return nil
}
