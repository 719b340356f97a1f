// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/timeline/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin // Store loaded plugins by name
	ready   []Plugin          // Successfully initialized, in init order
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	logger.DebugTagf("plugin", "Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// sorted returns the registered plugins ordered by name.
func (m *Manager) sorted() []Plugin {
	names := make([]string, 0, len(m.plugins))
	for name := range m.plugins {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]Plugin, 0, len(names))
	for _, name := range names {
		list = append(list, m.plugins[name])
	}
	return list
}

// InitializePlugins calls Initialize on every registered plugin, in name order.
// A plugin that fails to initialize is logged and skipped; the rest still load.
func (m *Manager) InitializePlugins(api API) {
	m.mu.RLock()
	pluginsToInit := m.sorted()
	m.mu.RUnlock() // Unlock before calling plugin Init methods

	logger.Debugf("Plugin Manager: Initializing %d plugins...", len(pluginsToInit))
	ready := make([]Plugin, 0, len(pluginsToInit))
	for _, plugin := range pluginsToInit {
		if err := plugin.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", plugin.Name(), err)
			continue
		}
		logger.DebugTagf("plugin", "Plugin Manager: Successfully initialized plugin '%s'", plugin.Name())
		ready = append(ready, plugin)
	}

	m.mu.Lock()
	m.ready = ready
	m.mu.Unlock()
}

// ShutdownPlugins calls Shutdown on every initialized plugin in reverse init
// order and returns the first error.
func (m *Manager) ShutdownPlugins() error {
	m.mu.Lock()
	pluginsToShutdown := m.ready
	m.ready = nil
	m.mu.Unlock()

	logger.Debugf("Plugin Manager: Shutting down %d plugins...", len(pluginsToShutdown))
	var firstErr error
	for i := len(pluginsToShutdown) - 1; i >= 0; i-- {
		plugin := pluginsToShutdown[i]
		if err := plugin.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", plugin.Name(), err)
			if firstErr == nil {
				firstErr = fmt.Errorf("shutdown plugin '%s': %w", plugin.Name(), err)
			}
		}
	}
	return firstErr
}

// GetPlugin returns a registered plugin by name (e.g., for inter-plugin communication). Use cautiously.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}
