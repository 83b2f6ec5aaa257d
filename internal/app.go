package internal

import (
	"context"

	"grocery_admin/internal/api"
	"grocery_admin/internal/cli"
	"grocery_admin/internal/config"
	"grocery_admin/internal/logging"
	"grocery_admin/internal/session"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Run() error {
	var runner *cli.Runner

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		logging.Module(),
		api.Module(),
		session.Module(),
		cli.Module(),
		fx.Populate(&runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute()
}
