// internal/app/app.go
package app

import (
	"fmt"
	"io"

	"github.com/bethropolis/timeline/internal/clipboard"
	"github.com/bethropolis/timeline/internal/commands"
	"github.com/bethropolis/timeline/internal/config"
	"github.com/bethropolis/timeline/internal/event"
	"github.com/bethropolis/timeline/internal/logger"
	"github.com/bethropolis/timeline/internal/plugin"
	"github.com/bethropolis/timeline/internal/session"
	"github.com/bethropolis/timeline/internal/timeline"
)

// App wires a timeline to its script runner, event bus and plugins.
type App struct {
	cfg           *config.Config
	timeline      *timeline.Timeline
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	clipboard     *clipboard.Manager
	runner        *commands.Runner
	api           plugin.API
	out           io.Writer

	stats Stats
}

// Stats counts what happened to the timeline while the app ran.
type Stats struct {
	Applied   int
	Reverted  int
	Discarded int
	Folded    int
}

// NewApp creates the timeline over content, replaying records, and loads the
// built-in plugins. Command output goes to out.
func NewApp(cfg *config.Config, content string, records []timeline.Record, out io.Writer) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if out == nil {
		out = io.Discard
	}

	appInstance := &App{
		cfg:           cfg,
		eventManager:  event.NewManager(),
		pluginManager: plugin.NewManager(),
		clipboard:     clipboard.NewManager(cfg.Clipboard.System),
		out:           out,
	}

	// --- Subscribe Core Components (App level wiring) ---
	appInstance.eventManager.Subscribe(event.TypeRecordApplied, appInstance.handleRecordApplied)
	appInstance.eventManager.Subscribe(event.TypeRecordReverted, appInstance.handleRecordReverted)
	appInstance.eventManager.Subscribe(event.TypeRecordsDiscarded, appInstance.handleRecordsDiscarded)
	appInstance.eventManager.Subscribe(event.TypeRecordsFolded, appInstance.handleRecordsFolded)
	appInstance.eventManager.Subscribe(event.TypeTimelineRestored, appInstance.handleTimelineRestored)

	// --- Create Timeline ---
	opts := append(cfg.TimelineOptions(), timeline.WithEvents(appInstance.eventManager))
	tl, err := timeline.New(content, records, opts...)
	if err != nil {
		return nil, fmt.Errorf("timeline initialization failed: %w", err)
	}
	appInstance.timeline = tl
	appInstance.runner = commands.NewRunner(tl, appInstance.clipboard, cfg.Chain(), out)

	// --- Create API adapter ---
	appInstance.api = newAPI(appInstance)

	// --- Register and Initialize Plugins (triggers RegisterCommand via API) ---
	if err := registerPlugins(appInstance.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	appInstance.pluginManager.InitializePlugins(appInstance.api)

	logger.Debugf("App: Initialized with %d record(s)", tl.Len())
	return appInstance, nil
}

// Run executes the script read from in.
func (a *App) Run(in io.Reader) error {
	return a.runner.Run(in)
}

// Shutdown stops the plugins. Call it once, after Run.
func (a *App) Shutdown() error {
	err := a.pluginManager.ShutdownPlugins()
	logger.Infof("App: Applied %d, reverted %d, discarded %d, folded %d record(s)",
		a.stats.Applied, a.stats.Reverted, a.stats.Discarded, a.stats.Folded)
	return err
}

// SaveSession writes the timeline's content and records to path.
func (a *App) SaveSession(path string) error {
	if err := session.Save(path, session.Capture(a.timeline)); err != nil {
		return err
	}
	logger.Infof("App: Saved session to %s", path)
	return nil
}

// Timeline returns the timeline the app edits.
func (a *App) Timeline() *timeline.Timeline {
	return a.timeline
}

// Stats returns the event counters collected so far.
func (a *App) Stats() Stats {
	return a.stats
}
