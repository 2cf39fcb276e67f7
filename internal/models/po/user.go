package po

import "time"

// User 表示 users 表的数据库实体。
// 在身份提供方触发用户创建事件时写入，之后保持不变。
type User struct {
	UID       string    `db:"uid"`        // 身份提供方分配的不透明用户 ID
	Email     *string   `db:"email"`      // 注册邮箱（可能缺失）
	PhotoURL  *string   `db:"photo_url"`  // 头像地址（可能缺失）
	CreatedAt time.Time `db:"created_at"` // 首次写入时间
}
