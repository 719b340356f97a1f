// internal/app/api.go
package app

import (
	"fmt"

	"github.com/bethropolis/timeline/internal/commands"
	"github.com/bethropolis/timeline/internal/event"
	"github.com/bethropolis/timeline/internal/plugin"
	"github.com/bethropolis/timeline/internal/text"
	"github.com/bethropolis/timeline/internal/timeline"
)

// Ensure appAPI implements the plugin.API interface.
var _ plugin.API = (*appAPI)(nil)

// appAPI provides the concrete implementation of the plugin.API interface.
type appAPI struct {
	app *App // Reference back to the main application
}

func newAPI(app *App) *appAPI {
	return &appAPI{app: app}
}

// --- Timeline Access ---

func (api *appAPI) Value() string {
	return api.app.timeline.Value()
}

func (api *appAPI) Unit() text.Unit {
	return api.app.timeline.Unit()
}

func (api *appAPI) Records() []timeline.Record {
	return api.app.timeline.Records()
}

// --- Event Bus Interaction ---

func (api *appAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if cmdFunc == nil {
		return fmt.Errorf("command %q has no function", name)
	}
	return api.app.runner.Register(name, func(_ *commands.Runner, args string) error {
		return cmdFunc(args)
	})
}

// --- Output ---

func (api *appAPI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(api.app.out, format, args...)
}

// --- Sessions ---

func (api *appAPI) SaveSession(path string) error {
	return api.app.SaveSession(path)
}

// --- Configuration ---

func (api *appAPI) PluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}
