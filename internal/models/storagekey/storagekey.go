// Package storagekey 定义上传对象键的构造与解析规则。
//
// 对象键格式为 `{uid}-{epoch_ms}.{ext}`：键本身编码了上传者与大致创建时间，
// 原始对象、处理产物与目录条目之间通过该键关联，无需额外的唯一性检查。
package storagekey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ProcessedPrefix 是转码流水线为处理产物附加的对象名前缀。
const ProcessedPrefix = "processed-"

// ErrInvalidObjectName 表示对象名不符合 `{uid}-{epoch_ms}.{ext}` 约定。
var ErrInvalidObjectName = errors.New("object name does not match {uid}-{epoch_ms}.{ext}")

// RawRef 描述从原始对象名解析出的上传信息。
type RawRef struct {
	UID        string
	UploadedAt time.Time
	Extension  string
}

// RawObjectName 构造原始上传的对象键。
// 同一用户在同一毫秒内的两次上传会得到相同的键，这是已知缺口，调用方负责感知。
func RawObjectName(uid string, at time.Time, ext string) string {
	return fmt.Sprintf("%s-%d.%s", uid, at.UnixMilli(), ext)
}

// VideoID 从对象名派生目录条目的主键（去掉扩展名；处理产物先去前缀）。
func VideoID(objectName string) string {
	name := strings.TrimPrefix(objectName, ProcessedPrefix)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		return name[:idx]
	}
	return name
}

// ParseRaw 解析原始对象名。uid 中允许出现连字符，因此以最后一个连字符切分。
func ParseRaw(objectName string) (RawRef, error) {
	name := objectName
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return RawRef{}, ErrInvalidObjectName
	}
	ext := name[idx+1:]
	stem := name[:idx]

	sep := strings.LastIndex(stem, "-")
	if sep <= 0 || sep == len(stem)-1 {
		return RawRef{}, ErrInvalidObjectName
	}
	uid := stem[:sep]
	millis, err := strconv.ParseInt(stem[sep+1:], 10, 64)
	if err != nil {
		return RawRef{}, ErrInvalidObjectName
	}

	return RawRef{
		UID:        uid,
		UploadedAt: time.UnixMilli(millis).UTC(),
		Extension:  ext,
	}, nil
}

// ProcessedObjectName 返回转码产物的对象名。
func ProcessedObjectName(rawObjectName string) string {
	return ProcessedPrefix + rawObjectName
}

// RawFromProcessed 去掉处理产物前缀，还原原始对象名。
// 第二个返回值为 false 时说明对象名不带前缀，不属于本流水线的产物。
func RawFromProcessed(processedObjectName string) (string, bool) {
	if !strings.HasPrefix(processedObjectName, ProcessedPrefix) {
		return "", false
	}
	return strings.TrimPrefix(processedObjectName, ProcessedPrefix), true
}

// PlaybackURL 拼接播放地址。客户端独立构造同样的地址，
// 因此这里必须保持 `{base}/{filename}` 的精确拼接契约。
func PlaybackURL(processedBase, filename string) string {
	return strings.TrimSuffix(processedBase, "/") + "/" + filename
}
