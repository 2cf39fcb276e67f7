package configloader

import "time"

const (
	// defaultConfPath is the fallback configuration directory when no overrides are provided.
	defaultConfPath = "configs"
	// defaultServiceName is used when SERVICE_NAME is missing.
	defaultServiceName = "yt-clone-catalog"
	// defaultEnvironment is used when APP_ENV is missing.
	defaultEnvironment = "development"
	// defaultHTTPAddr is the listen address applied when the config omits one.
	defaultHTTPAddr = "0.0.0.0:8000"
	// defaultUploadURLTTL bounds signed upload URLs when the config omits a TTL.
	defaultUploadURLTTL = 15 * time.Minute
	// defaultCatalogPageSize caps the public catalog query.
	defaultCatalogPageSize = 10
)
