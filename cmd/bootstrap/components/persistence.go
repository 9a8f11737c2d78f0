package components

import (
	"gudlft-booking/internal/infra/uow"

	"go.uber.org/fx"
)

// Repositories are scoped to a unit of work and built by it, so the unit
// of work is the only persistence binding.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewFileUoW,
	),
)
