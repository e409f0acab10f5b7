package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"segctl/internal/domain"
	"segctl/internal/eventbus"
)

type recordingBus struct {
	published []domain.DomainEvent
}

func (b *recordingBus) Publish(event domain.DomainEvent) { b.published = append(b.published, event) }

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }

func (b *recordingBus) Close() {}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segdemo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := NewConfigService("").LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadReadsToml(t *testing.T) {
	path := writeFile(t, `
version = 1

[control]
name = "demo"
titles = ["one", "two", "three", "four"]
selected = 2
selected_text_color = "10"

[control.selected_font]
bold = false
italic = true

[control.slider]
height = 2
duration_ms = 100

[control.frame]
width = 60

[ui]
autosave_on_exit = true
`)
	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)

	c := cfg.Control
	assert.Equal(t, "demo", c.Name)
	assert.Equal(t, []string{"one", "two", "three", "four"}, c.Titles)
	assert.Equal(t, 2, c.Selected)
	assert.Equal(t, "10", c.SelectedTextColor)
	assert.Equal(t, "0", c.UnselectedTextColor, "unset keys keep defaults")
	assert.True(t, c.SelectedFont.Italic)
	assert.False(t, c.SelectedFont.Bold)
	assert.Equal(t, 2, c.Slider.Height)
	assert.Equal(t, "9", c.Slider.Color)
	assert.Equal(t, 100*time.Millisecond, c.Slider.Duration())
	assert.Equal(t, 60, c.Frame.Width)
	assert.Equal(t, 3, c.Frame.Height)
	assert.True(t, cfg.UISettings.AutosaveOnExit)
	assert.True(t, cfg.UISettings.ShowHelp)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SEGDEMO_CONTROL_TITLES", "a,b,c")
	t.Setenv("SEGDEMO_CONTROL_SLIDER_HIDDEN", "true")

	cfg, err := NewConfigService(filepath.Join(t.TempDir(), "missing.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Control.Titles)
	assert.True(t, cfg.Control.Slider.Hidden)
}

func TestLoadNormalizes(t *testing.T) {
	path := writeFile(t, `
[control]
titles = ["  ", ""]
selected = 7

[control.slider]
height = -3
`)
	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultTitles(), cfg.Control.Titles)
	assert.Equal(t, 0, cfg.Control.Selected)
	assert.Equal(t, 0, cfg.Control.Slider.Height)
}

func TestLoadInvalidToml(t *testing.T) {
	path := writeFile(t, "[control\ntitles = ")
	_, err := NewConfigService(path).Load()
	require.Error(t, err)
}

func TestSaveRoundTripAndEvents(t *testing.T) {
	bus := &recordingBus{}
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceWithBus(path, bus)

	cfg := DefaultConfig()
	cfg.Control.Titles = []string{"x", "y"}
	cfg.Control.Selected = 1
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	require.Len(t, bus.published, 2)
	assert.Equal(t, domain.ConfigSavedEvent{Path: path}, bus.published[0])
	assert.Equal(t, domain.ConfigLoadedEvent{Path: path, Titles: []string{"x", "y"}}, bus.published[1])
}

func TestSaveToPathNil(t *testing.T) {
	err := NewConfigService("").SaveToPath(nil, filepath.Join(t.TempDir(), "c.toml"))
	require.Error(t, err)
}

func TestMarshalContainsSections(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[control]")
	assert.Contains(t, string(data), "[control.slider]")
	assert.Contains(t, string(data), "duration_ms = 250")
}
