package components

import (
	"weekboard/internal/pkg/clock"
	"weekboard/internal/usecase/commands"
	"weekboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookingCommands,
		queries.NewBookingQueries,
	),
)
