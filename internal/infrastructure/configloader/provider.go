package configloader

import "github.com/google/wire"

// ProviderSet exposes configuration-derived dependencies for Wire graphs.
var ProviderSet = wire.NewSet(
	ProvideServiceMetadata,
	ProvideServerConfig,
	ProvideDatabaseConfig,
	ProvideStorageConfig,
	ProvideMessagingConfig,
	ProvideCatalogConfig,
)

// ProvideServiceMetadata returns the resolved ServiceMetadata.
func ProvideServiceMetadata(rc *RuntimeConfig) ServiceMetadata {
	if rc == nil {
		return ServiceMetadata{}
	}
	return rc.Service
}

// ProvideServerConfig returns the server section of the runtime configuration.
func ProvideServerConfig(rc *RuntimeConfig) ServerConfig {
	if rc == nil {
		return ServerConfig{}
	}
	return rc.Server
}

// ProvideDatabaseConfig returns the database section of the runtime configuration.
func ProvideDatabaseConfig(rc *RuntimeConfig) DatabaseConfig {
	if rc == nil {
		return DatabaseConfig{}
	}
	return rc.Database
}

// ProvideStorageConfig returns the storage section of the runtime configuration.
func ProvideStorageConfig(rc *RuntimeConfig) StorageConfig {
	if rc == nil {
		return StorageConfig{}
	}
	return rc.Storage
}

// ProvideMessagingConfig returns the messaging section of the runtime configuration.
func ProvideMessagingConfig(rc *RuntimeConfig) MessagingConfig {
	if rc == nil {
		return MessagingConfig{}
	}
	return rc.Messaging
}

// ProvideCatalogConfig returns the catalog section of the runtime configuration.
func ProvideCatalogConfig(rc *RuntimeConfig) CatalogConfig {
	if rc == nil {
		return CatalogConfig{}
	}
	return rc.Catalog
}
