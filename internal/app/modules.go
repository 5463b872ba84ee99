package app

import (
	"io"

	"github.com/vk/gridctl/internal/config"
	"github.com/vk/gridctl/internal/registry"
	"github.com/vk/gridctl/modules/configcmd"
	"github.com/vk/gridctl/modules/events"
	"github.com/vk/gridctl/modules/help"
	"github.com/vk/gridctl/modules/site"
	"github.com/vk/gridctl/modules/version"
)

// coreModules is the definitive list of all command modules that are
// compiled into the gridctl binary.
func coreModules(cfg *config.Model, outW io.Writer) []registry.Module {
	return []registry.Module{
		help.NewModule(),
		version.NewModule(),
		site.NewModule(cfg),
		configcmd.NewModule(cfg),
		events.NewModule(cfg, outW),
	}
}
