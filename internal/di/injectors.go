//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"qrd/internal"
	"qrd/internal/controllers"
	"qrd/internal/persistence"
	"qrd/internal/providers"
	"qrd/internal/services"
	"qrd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewMetricsProvider,

		persistence.NewZstdCompressor,
		services.NewHistoryService,
		persistence.NewFileManager,
		persistence.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
