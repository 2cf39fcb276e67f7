package gcs

import "github.com/google/wire"

// ProviderSet 暴露 GCS 签名器构造器供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(ProvideUploadSigner)
