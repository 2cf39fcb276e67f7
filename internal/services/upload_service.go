package services

import (
	"context"
	"strings"
	"time"

	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
	"github.com/deepencoding/yt-clone-catalog/internal/models/storagekey"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// 扩展名约束：小写字母与数字，长度上限防御超长键。
const maxExtensionLength = 16

// UploadSigner 定义生成写入型 Signed URL 的能力。
type UploadSigner interface {
	SignedUploadURL(ctx context.Context, bucket, objectName string, ttl time.Duration) (string, time.Time, error)
}

// GenerateUploadURLInput 为服务层输入。
type GenerateUploadURLInput struct {
	UserID        string
	FileExtension string
}

// GenerateUploadURLResult 为服务层输出。
type GenerateUploadURLResult struct {
	URL       string
	FileName  string
	ExpiresAt time.Time
}

// UploadURLService 实现签名上传 URL 的签发用例。
// 无状态：除签发凭据外不产生任何副作用，可无限并发调用。
type UploadURLService struct {
	signer UploadSigner
	bucket string
	ttl    time.Duration
	now    func() time.Time
	log    *log.Helper
}

// NewUploadURLService 构造 UploadURLService。
func NewUploadURLService(signer UploadSigner, cfg configloader.StorageConfig, logger log.Logger) *UploadURLService {
	ttl := cfg.UploadURLTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &UploadURLService{
		signer: signer,
		bucket: cfg.RawBucket,
		ttl:    ttl,
		now:    time.Now,
		log:    log.NewHelper(logger),
	}
}

// WithClock 覆盖时间获取函数，便于测试对象键的确定性构造。
func (s *UploadURLService) WithClock(clock func() time.Time) *UploadURLService {
	if clock != nil {
		s.now = clock
	}
	return s
}

// GenerateUploadURL 为已认证用户签发时效受限、仅允许写入单一对象键的上传凭据。
//
// 对象键为 `{uid}-{epoch_ms}.{ext}`：所有权与创建时间编码在键里，
// 不需要额外的唯一性检查。本操作不写任何元数据，目录条目由
// 转码流水线观察到原始上传后异步产生。
func (s *UploadURLService) GenerateUploadURL(ctx context.Context, input GenerateUploadURLInput) (*GenerateUploadURLResult, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, ErrAuthRequired
	}

	ext, err := normalizeExtension(input.FileExtension)
	if err != nil {
		return nil, err
	}

	fileName := storagekey.RawObjectName(input.UserID, s.now(), ext)

	url, expires, signErr := s.signer.SignedUploadURL(ctx, s.bucket, fileName, s.ttl)
	if signErr != nil {
		s.log.WithContext(ctx).Errorf("sign upload url failed: uid=%s file=%s err=%v", input.UserID, fileName, signErr)
		return nil, kerrors.InternalServer(ReasonSignURLFailed, "failed to sign upload url").WithCause(signErr)
	}

	s.log.WithContext(ctx).Infof("issued upload url: uid=%s file=%s expires=%s", input.UserID, fileName, expires.UTC().Format(time.RFC3339))
	return &GenerateUploadURLResult{
		URL:       url,
		FileName:  fileName,
		ExpiresAt: expires,
	}, nil
}

// normalizeExtension 校验调用方提供的扩展名。
// 扩展名会原样进入存储键，必须排除路径字符与其他元字符。
func normalizeExtension(raw string) (string, error) {
	ext := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, ".")))
	if ext == "" {
		return "", kerrors.BadRequest(ReasonExtensionInvalid, "file extension is required")
	}
	if len(ext) > maxExtensionLength {
		return "", kerrors.BadRequest(ReasonExtensionInvalid, "file extension too long")
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "", kerrors.BadRequest(ReasonExtensionInvalid, "file extension must be alphanumeric")
		}
	}
	return ext, nil
}
