// Package ingest 消费原始桶的 OBJECT_FINALIZE 事件，为新上传创建目录条目。
package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Event 表示从 GCS 对象通知中解析出的关键信息。
type Event struct {
	Bucket      string
	ObjectName  string
	Generation  string
	SizeBytes   int64
	ContentType string
}

type gcsObjectMessage struct {
	Bucket      string `json:"bucket"`
	Name        string `json:"name"`
	Generation  string `json:"generation"`
	Size        string `json:"size"`
	ContentType string `json:"contentType"`
}

type eventDecoder struct{}

func newDecoder() *eventDecoder {
	return &eventDecoder{}
}

// Decode 将 Pub/Sub 消息数据解析为 Event。
func (d *eventDecoder) Decode(data []byte) (*Event, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("ingest: empty payload")
	}

	var msg gcsObjectMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("ingest: decode gcs object payload: %w", err)
	}
	if msg.Bucket == "" || msg.Name == "" {
		return nil, fmt.Errorf("ingest: missing bucket or object name")
	}

	var size int64
	if msg.Size != "" {
		parsed, err := strconv.ParseInt(msg.Size, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: parse size: %w", err)
		}
		size = parsed
	}

	return &Event{
		Bucket:      msg.Bucket,
		ObjectName:  msg.Name,
		Generation:  msg.Generation,
		SizeBytes:   size,
		ContentType: msg.ContentType,
	}, nil
}
