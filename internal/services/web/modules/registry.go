package modules

import (
	"github.com/sabhaenabler/website/internal/services/web/modules/public"
)

// DefaultModules returns the stable web modules in mount order.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		public.New(deps),
	}
}
