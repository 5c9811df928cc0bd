package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/cetler74/linkuupapp-sub002/config"
	"github.com/cetler74/linkuupapp-sub002/internal/infra/auth"
	logs "github.com/cetler74/linkuupapp-sub002/internal/infra/log"
	"github.com/cetler74/linkuupapp-sub002/internal/stub"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Server *stub.Server
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			auth.NewBcryptHasher,
			stub.NewServer,
		),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStop: params.Server.Shutdown,
	})

	go func() {
		if err := params.Server.Serve(context.Background()); err != nil {
			slog.Error("failed to start stub api", slog.Any("error", err))
			os.Exit(1)
		}
	}()
}
