//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"context"

	"github.com/deepencoding/yt-clone-catalog/internal/controllers"
	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/database"
	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/gcpubsub"
	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/gcs"
	"github.com/deepencoding/yt-clone-catalog/internal/repositories"
	"github.com/deepencoding/yt-clone-catalog/internal/server"
	"github.com/deepencoding/yt-clone-catalog/internal/services"
	"github.com/deepencoding/yt-clone-catalog/internal/tasks/identity"
	"github.com/deepencoding/yt-clone-catalog/internal/tasks/ingest"
	"github.com/deepencoding/yt-clone-catalog/internal/tasks/transcode"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(context.Context, *configloader.RuntimeConfig, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		database.ProviderSet,
		gcs.ProviderSet,
		gcpubsub.ProviderSet,
		repositories.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		server.ProviderSet,
		identity.ProvideRunner,
		ingest.ProvideRunner,
		transcode.ProvideRunner,
		wire.Bind(new(services.UploadSigner), new(*gcs.UploadSigner)),
		newApp,
	))
}
