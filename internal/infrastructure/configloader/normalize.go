package configloader

import (
	"fmt"
	"time"
)

// bootstrap 映射配置文件的原始结构。时长字段以字符串承载（"5s"、"15m"），
// 在 normalize 阶段解析为 time.Duration。
type bootstrap struct {
	Server struct {
		HTTP struct {
			Network string `json:"network"`
			Addr    string `json:"addr"`
			Timeout string `json:"timeout"`
		} `json:"http"`
	} `json:"server"`
	Data struct {
		Postgres struct {
			DSN                string `json:"dsn"`
			Schema             string `json:"schema"`
			MaxOpenConns       int32  `json:"max_open_conns"`
			MinOpenConns       int32  `json:"min_open_conns"`
			MaxConnLifetime    string `json:"max_conn_lifetime"`
			MaxConnIdleTime    string `json:"max_conn_idle_time"`
			HealthCheckPeriod  string `json:"health_check_period"`
			PreparedStatements bool   `json:"prepared_statements"`
		} `json:"postgres"`
	} `json:"data"`
	Storage struct {
		RawBucket            string `json:"raw_bucket"`
		ProcessedBucket      string `json:"processed_bucket"`
		PlaybackBaseURL      string `json:"playback_base_url"`
		SignerServiceAccount string `json:"signer_service_account"`
		UploadURLTTL         string `json:"upload_url_ttl"`
	} `json:"storage"`
	Messaging struct {
		ProjectID              string `json:"project_id"`
		IdentitySubscription   string `json:"identity_subscription"`
		RawUploadsSubscription string `json:"raw_uploads_subscription"`
		ProcessedSubscription  string `json:"processed_subscription"`
	} `json:"messaging"`
	Catalog struct {
		PageSize int `json:"page_size"`
	} `json:"catalog"`
}

// RuntimeConfig 聚合强类型的配置片段，供下游 Wire 注入使用。
type RuntimeConfig struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Messaging MessagingConfig
	Catalog   CatalogConfig
	Service   ServiceMetadata
}

// ServerConfig 描述 HTTP 服务器的监听参数。
type ServerConfig struct {
	Network string
	Addr    string
	Timeout time.Duration
}

// DatabaseConfig 描述 PostgreSQL 连接池参数。
type DatabaseConfig struct {
	DSN                string
	Schema             string
	MaxOpenConns       int32
	MinOpenConns       int32
	MaxConnLifetime    time.Duration
	MaxConnIdleTime    time.Duration
	HealthCheckPeriod  time.Duration
	PreparedStatements bool
}

// StorageConfig 描述对象存储桶与签名 URL 参数。
type StorageConfig struct {
	RawBucket            string
	ProcessedBucket      string
	PlaybackBaseURL      string
	SignerServiceAccount string
	UploadURLTTL         time.Duration
}

// MessagingConfig 描述 Pub/Sub 订阅。订阅名为空时对应的 Runner 不启用。
type MessagingConfig struct {
	ProjectID              string
	IdentitySubscription   string
	RawUploadsSubscription string
	ProcessedSubscription  string
}

// CatalogConfig 描述目录查询行为。
type CatalogConfig struct {
	PageSize int
}

// normalize 将原始 bootstrap 转换为 RuntimeConfig，解析时长并填充默认值。
func normalize(bc *bootstrap) (*RuntimeConfig, error) {
	if bc == nil {
		return nil, fmt.Errorf("bootstrap config is nil")
	}

	rc := &RuntimeConfig{}

	rc.Server = ServerConfig{
		Network: bc.Server.HTTP.Network,
		Addr:    bc.Server.HTTP.Addr,
	}
	if rc.Server.Addr == "" {
		rc.Server.Addr = defaultHTTPAddr
	}
	var err error
	if rc.Server.Timeout, err = parseDuration("server.http.timeout", bc.Server.HTTP.Timeout); err != nil {
		return nil, err
	}

	pg := bc.Data.Postgres
	rc.Database = DatabaseConfig{
		DSN:                pg.DSN,
		Schema:             pg.Schema,
		MaxOpenConns:       pg.MaxOpenConns,
		MinOpenConns:       pg.MinOpenConns,
		PreparedStatements: pg.PreparedStatements,
	}
	if rc.Database.MaxConnLifetime, err = parseDuration("data.postgres.max_conn_lifetime", pg.MaxConnLifetime); err != nil {
		return nil, err
	}
	if rc.Database.MaxConnIdleTime, err = parseDuration("data.postgres.max_conn_idle_time", pg.MaxConnIdleTime); err != nil {
		return nil, err
	}
	if rc.Database.HealthCheckPeriod, err = parseDuration("data.postgres.health_check_period", pg.HealthCheckPeriod); err != nil {
		return nil, err
	}

	st := bc.Storage
	rc.Storage = StorageConfig{
		RawBucket:            st.RawBucket,
		ProcessedBucket:      st.ProcessedBucket,
		PlaybackBaseURL:      st.PlaybackBaseURL,
		SignerServiceAccount: st.SignerServiceAccount,
	}
	if rc.Storage.UploadURLTTL, err = parseDuration("storage.upload_url_ttl", st.UploadURLTTL); err != nil {
		return nil, err
	}
	if rc.Storage.UploadURLTTL <= 0 {
		rc.Storage.UploadURLTTL = defaultUploadURLTTL
	}
	if rc.Storage.RawBucket == "" {
		return nil, fmt.Errorf("storage.raw_bucket is required")
	}
	if rc.Storage.ProcessedBucket == "" {
		return nil, fmt.Errorf("storage.processed_bucket is required")
	}

	rc.Messaging = MessagingConfig{
		ProjectID:              bc.Messaging.ProjectID,
		IdentitySubscription:   bc.Messaging.IdentitySubscription,
		RawUploadsSubscription: bc.Messaging.RawUploadsSubscription,
		ProcessedSubscription:  bc.Messaging.ProcessedSubscription,
	}

	rc.Catalog = CatalogConfig{PageSize: bc.Catalog.PageSize}
	if rc.Catalog.PageSize <= 0 {
		rc.Catalog.PageSize = defaultCatalogPageSize
	}

	return rc, nil
}

// parseDuration 解析配置里的时长字符串，空值返回 0。
func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	return d, nil
}
