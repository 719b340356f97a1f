package app

import (
	"github.com/bethropolis/timeline/internal/event"
	"github.com/bethropolis/timeline/internal/logger"
)

func (a *App) handleRecordApplied(e event.Event) bool {
	a.stats.Applied++
	return false // Not consumed
}

func (a *App) handleRecordReverted(e event.Event) bool {
	a.stats.Reverted++
	return false // Not consumed
}

func (a *App) handleRecordsDiscarded(e event.Event) bool {
	if data, ok := e.Data.(event.DiscardedData); ok {
		a.stats.Discarded += data.Count
	}
	return false
}

// handleRecordsFolded reports records merged into the initial value; they can
// no longer be undone.
func (a *App) handleRecordsFolded(e event.Event) bool {
	if data, ok := e.Data.(event.FoldedData); ok {
		a.stats.Folded += data.Count
		logger.Infof("App: Folded %d record(s) past max_records into the initial value", data.Count)
	}
	return false
}

func (a *App) handleTimelineRestored(e event.Event) bool {
	if data, ok := e.Data.(event.RestoredData); ok {
		logger.Infof("App: Restored %d record(s), %d active", data.Records, data.Replayed)
	}
	return false
}
