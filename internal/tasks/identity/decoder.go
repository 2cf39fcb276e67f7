// Package identity 消费身份提供方的用户创建事件，落地用户档案。
package identity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Event 表示从用户创建消息中解析出的关键信息。
type Event struct {
	UID      string
	Email    *string
	PhotoURL *string
}

type userCreatedMessage struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl"`
}

type eventDecoder struct{}

func newDecoder() *eventDecoder {
	return &eventDecoder{}
}

// Decode 将 Pub/Sub 消息数据解析为 Event。
func (d *eventDecoder) Decode(data []byte) (*Event, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("identity: empty payload")
	}

	var msg userCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("identity: decode user created payload: %w", err)
	}
	if strings.TrimSpace(msg.UID) == "" {
		return nil, fmt.Errorf("identity: missing uid")
	}

	return &Event{
		UID:      msg.UID,
		Email:    optionalString(msg.Email),
		PhotoURL: optionalString(msg.PhotoURL),
	}, nil
}

func optionalString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v := value
	return &v
}
