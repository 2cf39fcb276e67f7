// Package main boots the Kratos HTTP entrypoint for the catalog service.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"
	loginfra "github.com/deepencoding/yt-clone-catalog/internal/infrastructure/logger"
	"github.com/deepencoding/yt-clone-catalog/internal/server"
	"github.com/deepencoding/yt-clone-catalog/internal/tasks/identity"
	"github.com/deepencoding/yt-clone-catalog/internal/tasks/ingest"
	"github.com/deepencoding/yt-clone-catalog/internal/tasks/transcode"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/go-kratos/kratos/v2/transport/http"

	_ "go.uber.org/automaxprocs"
)

func newApp(
	logger log.Logger,
	meta configloader.ServiceMetadata,
	hs *http.Server,
	identityRunner *identity.Runner,
	ingestRunner *ingest.Runner,
	transcodeRunner *transcode.Runner,
) *kratos.App {
	servers := []transport.Server{hs}
	if identityRunner != nil {
		servers = append(servers, server.NewTaskServer("identity", identityRunner, logger))
	}
	if ingestRunner != nil {
		servers = append(servers, server.NewTaskServer("ingest", ingestRunner, logger))
	}
	if transcodeRunner != nil {
		servers = append(servers, server.NewTaskServer("transcode", transcodeRunner, logger))
	}

	return kratos.New(
		kratos.ID(meta.InstanceID),
		kratos.Name(meta.Name),
		kratos.Version(meta.Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(servers...),
	)
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	confPath := fs.String("conf", "", "config path, eg: -conf configs")
	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}

	rc, err := configloader.Load(configloader.Params{ConfPath: *confPath})
	if err != nil {
		panic(err)
	}

	logger, err := loginfra.NewLogger(rc.Service)
	if err != nil {
		panic(err)
	}

	app, cleanup, err := wireApp(context.Background(), rc, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		panic(err)
	}
}
