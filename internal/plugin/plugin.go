// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/timeline/internal/event"
	"github.com/bethropolis/timeline/internal/text"
	"github.com/bethropolis/timeline/internal/timeline"
)

// CommandFunc defines the signature for commands registered by plugins.
// It receives the rest of the script line after the command name.
type CommandFunc func(args string) error

// API defines the methods plugins can use to interact with the host.
// Plugins read the timeline but edit it only through script commands.
type API interface {
	// --- Timeline Access (Read-Only) ---
	Value() string
	Unit() text.Unit
	Records() []timeline.Record

	// --- Event Bus Interaction ---
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Output ---
	Printf(format string, args ...interface{}) // Write to the script output

	// --- Sessions ---
	SaveSession(path string) error

	// --- Configuration ---
	// PluginConfigValue returns a value from the [plugins.<name>] table.
	PluginConfigValue(pluginName, key string) (interface{}, bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	// Used for reading configuration, subscribing to events and registering commands.
	Initialize(api API) error

	// Shutdown is called once after the script has run.
	Shutdown() error
}
