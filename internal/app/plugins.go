package app

import (
	"fmt" // For error wrapping

	"github.com/bethropolis/timeline/internal/logger"
	"github.com/bethropolis/timeline/internal/plugin"

	// Import desired plugin packages here
	"github.com/bethropolis/timeline/plugins/autosave"
	"github.com/bethropolis/timeline/plugins/wordcount"
)

// registerPlugins registers all known plugins with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	// Adding a new plugin means adding its constructor here.
	pluginConstructors := []func() plugin.Plugin{
		wordcount.New,
		autosave.New,
	}

	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		pluginName := p.Name() // Get name for logging

		logger.Debugf("Registering plugin: %s", pluginName)
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", pluginName, err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr // Store the first error encountered
			}
		}
	}

	return finalErr // Return the first error encountered, or nil
}
