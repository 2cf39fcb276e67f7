package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
	"github.com/deepencoding/yt-clone-catalog/internal/models/po"
	"github.com/deepencoding/yt-clone-catalog/internal/models/storagekey"

	"github.com/go-kratos/kratos/v2/log"
)

// VideoLifecycleService 把存储事件映射为目录条目的状态迁移。
//
// 两个入口都是幂等的：原始上传事件重复投递时最多创建一条 Processing 记录，
// 转码完成事件重复投递时状态保持 Processed 不变。无法归属于流水线的事件
// 返回 nil 以便消费者 Ack，避免毒消息循环。
type VideoLifecycleService struct {
	repo            VideoRepo
	rawBucket       string
	processedBucket string
	log             *log.Helper
}

// NewVideoLifecycleService 构造 VideoLifecycleService。
func NewVideoLifecycleService(repo VideoRepo, cfg configloader.StorageConfig, logger log.Logger) *VideoLifecycleService {
	return &VideoLifecycleService{
		repo:            repo,
		rawBucket:       cfg.RawBucket,
		processedBucket: cfg.ProcessedBucket,
		log:             log.NewHelper(logger),
	}
}

// RegisterRawUpload 为新落盘的原始对象创建 Processing 目录条目。
// 条目创建后对目录查询不可见，直到转码完成事件将其翻转为 Processed。
func (s *VideoLifecycleService) RegisterRawUpload(ctx context.Context, bucket, objectName string) error {
	if s.rawBucket != "" && bucket != s.rawBucket {
		s.log.WithContext(ctx).Warnf("raw upload event from unexpected bucket, dropping: bucket=%s object=%s", bucket, objectName)
		return nil
	}

	ref, err := storagekey.ParseRaw(objectName)
	if err != nil {
		s.log.WithContext(ctx).Warnf("unparsable raw object name, dropping: object=%s err=%v", objectName, err)
		return nil
	}

	video := &po.Video{
		ID:       storagekey.VideoID(objectName),
		UID:      ref.UID,
		Filename: objectName,
		Status:   po.VideoStatusProcessing,
	}

	created, err := s.repo.CreateProcessing(ctx, video)
	if err != nil {
		return fmt.Errorf("create processing entry for %s: %w", objectName, err)
	}
	if !created {
		s.log.WithContext(ctx).Infof("duplicate raw upload event, entry exists: id=%s", video.ID)
		return nil
	}

	s.log.WithContext(ctx).Infof("registered raw upload: id=%s uid=%s file=%s", video.ID, video.UID, video.Filename)
	return nil
}

// MarkProcessed 在转码产物落盘后将对应条目翻转为 Processed，
// 并把 filename 指向处理产物，使目录直接返回可播放的对象名。
func (s *VideoLifecycleService) MarkProcessed(ctx context.Context, bucket, objectName string) error {
	if s.processedBucket != "" && bucket != s.processedBucket {
		s.log.WithContext(ctx).Warnf("processed event from unexpected bucket, dropping: bucket=%s object=%s", bucket, objectName)
		return nil
	}

	rawName, ok := storagekey.RawFromProcessed(objectName)
	if !ok {
		s.log.WithContext(ctx).Warnf("object without processed prefix, dropping: object=%s", objectName)
		return nil
	}

	videoID := storagekey.VideoID(rawName)
	video, flipped, err := s.repo.MarkProcessed(ctx, videoID, objectName)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			// 转码事件先于上传事件到达时目录条目尚不存在，
			// 返回错误让消费者 Nack 重试，等待条目出现。
			s.log.WithContext(ctx).Warnf("processed event before catalog entry, will retry: id=%s", videoID)
		}
		return fmt.Errorf("mark processed %s: %w", videoID, err)
	}
	if !flipped {
		s.log.WithContext(ctx).Infof("duplicate processed event, already flipped: id=%s", videoID)
		return nil
	}

	s.log.WithContext(ctx).Infof("video processed: id=%s uid=%s file=%s", video.ID, video.UID, video.Filename)
	return nil
}
