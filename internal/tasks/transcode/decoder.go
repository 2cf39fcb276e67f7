// Package transcode 消费处理桶的 OBJECT_FINALIZE 事件，将目录条目翻转为 Processed。
package transcode

import (
	"encoding/json"
	"fmt"
)

// Event 表示从 GCS 对象通知中解析出的关键信息。
type Event struct {
	Bucket     string
	ObjectName string
	Generation string
}

type gcsObjectMessage struct {
	Bucket     string `json:"bucket"`
	Name       string `json:"name"`
	Generation string `json:"generation"`
}

type eventDecoder struct{}

func newDecoder() *eventDecoder {
	return &eventDecoder{}
}

// Decode 将 Pub/Sub 消息数据解析为 Event。
func (d *eventDecoder) Decode(data []byte) (*Event, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("transcode: empty payload")
	}

	var msg gcsObjectMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("transcode: decode gcs object payload: %w", err)
	}
	if msg.Bucket == "" || msg.Name == "" {
		return nil, fmt.Errorf("transcode: missing bucket or object name")
	}

	return &Event{
		Bucket:     msg.Bucket,
		ObjectName: msg.Name,
		Generation: msg.Generation,
	}, nil
}
