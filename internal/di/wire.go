//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/transflower/firstwebapp/internal/app"
)

func InitializeApp() (*app.App, error) {
	panic(wire.Build(
		ConfigSet,
		ObservabilitySet,
		RuntimeInfraSet,
		PageSet,
		HTTPSet,
		AppSet,
	))
}
