package autosave

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/timeline/internal/event"
	"github.com/bethropolis/timeline/internal/plugin"
	"github.com/bethropolis/timeline/internal/text"
	"github.com/bethropolis/timeline/internal/timeline"
)

type fakeAPI struct {
	config  map[string]interface{}
	events  *event.Manager
	saved   []string
	saveErr error
}

func newFakeAPI(config map[string]interface{}) *fakeAPI {
	return &fakeAPI{config: config, events: event.NewManager()}
}

func (f *fakeAPI) Value() string { return "" }
func (f *fakeAPI) Unit() text.Unit { return text.UnitRune }
func (f *fakeAPI) Records() []timeline.Record { return nil }
func (f *fakeAPI) RegisterCommand(string, plugin.CommandFunc) error { return nil }
func (f *fakeAPI) Printf(string, ...interface{}) {}

func (f *fakeAPI) SubscribeEvent(t event.Type, h event.Handler) {
	f.events.Subscribe(t, h)
}

func (f *fakeAPI) SaveSession(path string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, path)
	return nil
}

func (f *fakeAPI) PluginConfigValue(pluginName, key string) (interface{}, bool) {
	if pluginName != "autosave" {
		return nil, false
	}
	v, ok := f.config[key]
	return v, ok
}

func TestDisabledWithoutPath(t *testing.T) {
	api := newFakeAPI(nil)
	p := New()
	require.NoError(t, p.Initialize(api))

	api.events.Dispatch(event.TypeRecordApplied, nil)
	require.NoError(t, p.Shutdown())
	assert.Empty(t, api.saved)
}

func TestSavesEveryNChanges(t *testing.T) {
	api := newFakeAPI(map[string]interface{}{"path": "s.json", "every": int64(2)})
	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))

	api.events.Dispatch(event.TypeRecordApplied, nil)
	assert.Empty(t, api.saved)
	api.events.Dispatch(event.TypeRecordReverted, nil)
	assert.Equal(t, []string{"s.json"}, api.saved)

	api.events.Dispatch(event.TypeTimelineReset, nil)
	require.NoError(t, p.Shutdown())
	assert.Equal(t, []string{"s.json", "s.json"}, api.saved)
	assert.Equal(t, 2, p.Saves())
}

func TestIgnoresOtherEvents(t *testing.T) {
	api := newFakeAPI(map[string]interface{}{"path": "s.json", "every": 1})
	p := New()
	require.NoError(t, p.Initialize(api))

	api.events.Dispatch(event.TypeRecordsDiscarded, nil)
	api.events.Dispatch(event.TypeRecordsFolded, nil)
	require.NoError(t, p.Shutdown())
	assert.Empty(t, api.saved)
}

func TestInvalidConfigFallsBack(t *testing.T) {
	api := newFakeAPI(map[string]interface{}{"path": "s.json", "every": "often"})
	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))
	assert.Equal(t, defaultEvery, p.every)

	api = newFakeAPI(map[string]interface{}{"path": 42})
	p = New().(*AutoSave)
	require.NoError(t, p.Initialize(api))
	assert.Equal(t, "", p.path)
}

func TestFailedSaveRetries(t *testing.T) {
	api := newFakeAPI(map[string]interface{}{"path": "s.json", "every": 1})
	api.saveErr = errors.New("disk full")
	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))

	api.events.Dispatch(event.TypeRecordApplied, nil)
	assert.Equal(t, 0, p.Saves())

	api.saveErr = nil
	api.events.Dispatch(event.TypeRecordApplied, nil)
	assert.Equal(t, 1, p.Saves())
	assert.Equal(t, 0, p.pending)
}
