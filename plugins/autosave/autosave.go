package autosave

import (
	"sync"

	"github.com/bethropolis/timeline/internal/event"
	"github.com/bethropolis/timeline/internal/logger"
	"github.com/bethropolis/timeline/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	// Default configuration values
	defaultEvery = 10
)

// AutoSave writes the session to a file after every few changes to the
// timeline. It is disabled until [plugins.autosave] names a path.
type AutoSave struct {
	api plugin.API // To interact with the host

	// Configuration
	mutex sync.Mutex // Protects the fields below
	path  string
	every int

	// Runtime state
	pending int // Changes since the last save
	saves   int
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		every: defaultEvery,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and subscribes to timeline changes if enabled.
func (p *AutoSave) Initialize(api plugin.API) error {
	p.api = api
	pluginName := p.Name()

	logger.Debugf("%s: Initializing...", pluginName)

	// --- Read Configuration ---
	p.mutex.Lock()
	if pathVal, ok := api.PluginConfigValue(pluginName, "path"); ok {
		if strVal, isStr := pathVal.(string); isStr {
			p.path = strVal
		} else {
			logger.Warnf("%s: Invalid type for 'path' config (%T), staying disabled", pluginName, pathVal)
		}
	}

	if everyVal, ok := api.PluginConfigValue(pluginName, "every"); ok {
		if n, isInt := toInt(everyVal); isInt && n > 0 {
			p.every = n
		} else {
			logger.Warnf("%s: 'every' config must be a positive integer (%v), using default (%d)", pluginName, everyVal, p.every)
		}
	}
	path, every := p.path, p.every
	p.mutex.Unlock()

	if path == "" {
		logger.Debugf("%s: No path configured, disabled.", pluginName)
		return nil
	}

	for _, t := range []event.Type{event.TypeRecordApplied, event.TypeRecordReverted, event.TypeTimelineReset} {
		api.SubscribeEvent(t, p.handleChange)
	}
	logger.Infof("%s initialized. Path: %s, every %d change(s)", pluginName, path, every)
	return nil
}

// Shutdown saves any changes made since the last save.
func (p *AutoSave) Shutdown() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.path == "" || p.pending == 0 {
		return nil
	}
	logger.Debugf("%s: Saving %d pending change(s) on shutdown", p.Name(), p.pending)
	return p.saveLocked()
}

// Saves returns how many times the session has been written.
func (p *AutoSave) Saves() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.saves
}

func (p *AutoSave) handleChange(e event.Event) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.pending++
	if p.pending < p.every {
		return false
	}
	if err := p.saveLocked(); err != nil {
		// Keep the count so the next change retries.
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), p.path, err)
	}
	return false
}

func (p *AutoSave) saveLocked() error {
	if err := p.api.SaveSession(p.path); err != nil {
		return err
	}
	logger.DebugTagf("plugin", "%s: Auto-saved session to '%s'", p.Name(), p.path)
	p.pending = 0
	p.saves++
	return nil
}

// toInt accepts the integer types TOML decoding can produce.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
