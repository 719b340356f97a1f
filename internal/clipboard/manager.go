// Package clipboard holds copied text for the timeline host, optionally
// mirrored to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/timeline/internal/logger"
)

// Manager handles clipboard operations
type Manager struct {
	system   bool
	register string // Internal clipboard, always kept up to date

	writeAll func(string) error
	readAll  func() (string, error)
}

// NewManager creates a clipboard manager. With system set, copies and pastes
// go through the system clipboard and fall back to the internal register
// when it is unavailable.
func NewManager(system bool) *Manager {
	if system && clipboard.Unsupported {
		logger.Warnf("ClipboardManager: System clipboard unsupported, using internal clipboard")
		system = false
	}
	return &Manager{
		system:   system,
		writeAll: clipboard.WriteAll,
		readAll:  clipboard.ReadAll,
	}
}

// System reports whether the system clipboard is in use.
func (m *Manager) System() bool {
	return m.system
}

// Copy stores text in the clipboard.
func (m *Manager) Copy(text string) error {
	m.register = text
	logger.DebugTagf("clipboard", "ClipboardManager: Yanked %d bytes", len(text))

	if !m.system {
		return nil
	}
	if err := m.writeAll(text); err != nil {
		logger.Warnf("ClipboardManager: System clipboard write failed, kept internal copy: %v", err)
	}
	return nil
}

// Paste returns the clipboard content.
func (m *Manager) Paste() (string, error) {
	if !m.system {
		return m.register, nil
	}

	text, err := m.readAll()
	if err != nil {
		logger.Warnf("ClipboardManager: System clipboard read failed, using internal copy: %v", err)
		return m.register, nil
	}
	return text, nil
}
