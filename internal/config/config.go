package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"segctl/internal/eventbus"
	"segctl/internal/ui/state"
)

// EnvPrefix prefixes environment overrides, e.g. SEGDEMO_CONTROL_TITLES
const EnvPrefix = "SEGDEMO"

// Config represents the application configuration
type Config struct {
	Version    int                `toml:"version" mapstructure:"version"`
	Control    ControlDescription `toml:"control" mapstructure:"control"`
	UISettings UISettings         `toml:"ui" mapstructure:"ui"`
}

// ControlDescription declares a segmented control: what it shows, how it
// looks and where it sits
type ControlDescription struct {
	Name     string   `toml:"name" mapstructure:"name"`
	Titles   []string `toml:"titles" mapstructure:"titles"`
	Selected int      `toml:"selected" mapstructure:"selected"`

	SelectedTextColor         string     `toml:"selected_text_color" mapstructure:"selected_text_color"`
	UnselectedTextColor       string     `toml:"unselected_text_color" mapstructure:"unselected_text_color"`
	SelectedBackgroundColor   string     `toml:"selected_background_color" mapstructure:"selected_background_color"`
	UnselectedBackgroundColor string     `toml:"unselected_background_color" mapstructure:"unselected_background_color"`
	SelectedFont              state.Font `toml:"selected_font" mapstructure:"selected_font"`
	UnselectedFont            state.Font `toml:"unselected_font" mapstructure:"unselected_font"`
	BorderColor               string     `toml:"border_color" mapstructure:"border_color"`
	ShowBorders               bool       `toml:"show_borders" mapstructure:"show_borders"`

	Slider SliderDescription `toml:"slider" mapstructure:"slider"`
	Frame  FrameDescription  `toml:"frame" mapstructure:"frame"`
}

// SliderDescription configures the selection indicator
type SliderDescription struct {
	Height     int    `toml:"height" mapstructure:"height"`
	Color      string `toml:"color" mapstructure:"color"`
	Hidden     bool   `toml:"hidden" mapstructure:"hidden"`
	DurationMS int    `toml:"duration_ms" mapstructure:"duration_ms"`
}

// Duration returns the animation duration
func (s SliderDescription) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// FrameDescription places the control, in terminal cells
type FrameDescription struct {
	X      int `toml:"x" mapstructure:"x"`
	Y      int `toml:"y" mapstructure:"y"`
	Width  int `toml:"width" mapstructure:"width"`
	Height int `toml:"height" mapstructure:"height"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutoWidth      bool `toml:"auto_width" mapstructure:"auto_width"`
	ShowHelp       bool `toml:"show_help" mapstructure:"show_help"`
	AutosaveOnExit bool `toml:"autosave_on_exit" mapstructure:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "segdemo", "config.toml")
}

// NewConfigService creates a config service reading path. An empty path
// selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields the defaults with environment overrides applied.
func (cs *configService) Load() (*Config, error) {
	cfg, err := load(cs.filePath, true)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cs.filePath, cfg)
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	cfg, err := load(path, false)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if config == nil {
		return errors.New("nil config")
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Path:   path,
		Titles: append([]string(nil), cfg.Control.Titles...),
	})
}

// Marshal encodes a config as TOML
func Marshal(config *Config) ([]byte, error) {
	data, err := toml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func load(path string, allowMissing bool) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) || !allowMissing {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	normalize(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	c := cfg.Control
	v.SetDefault("version", cfg.Version)
	v.SetDefault("control.name", c.Name)
	v.SetDefault("control.titles", c.Titles)
	v.SetDefault("control.selected", c.Selected)
	v.SetDefault("control.selected_text_color", c.SelectedTextColor)
	v.SetDefault("control.unselected_text_color", c.UnselectedTextColor)
	v.SetDefault("control.selected_background_color", c.SelectedBackgroundColor)
	v.SetDefault("control.unselected_background_color", c.UnselectedBackgroundColor)
	v.SetDefault("control.selected_font.bold", c.SelectedFont.Bold)
	v.SetDefault("control.selected_font.italic", c.SelectedFont.Italic)
	v.SetDefault("control.selected_font.underline", c.SelectedFont.Underline)
	v.SetDefault("control.selected_font.faint", c.SelectedFont.Faint)
	v.SetDefault("control.unselected_font.bold", c.UnselectedFont.Bold)
	v.SetDefault("control.unselected_font.italic", c.UnselectedFont.Italic)
	v.SetDefault("control.unselected_font.underline", c.UnselectedFont.Underline)
	v.SetDefault("control.unselected_font.faint", c.UnselectedFont.Faint)
	v.SetDefault("control.border_color", c.BorderColor)
	v.SetDefault("control.show_borders", c.ShowBorders)
	v.SetDefault("control.slider.height", c.Slider.Height)
	v.SetDefault("control.slider.color", c.Slider.Color)
	v.SetDefault("control.slider.hidden", c.Slider.Hidden)
	v.SetDefault("control.slider.duration_ms", c.Slider.DurationMS)
	v.SetDefault("control.frame.x", c.Frame.X)
	v.SetDefault("control.frame.y", c.Frame.Y)
	v.SetDefault("control.frame.width", c.Frame.Width)
	v.SetDefault("control.frame.height", c.Frame.Height)
	v.SetDefault("ui.auto_width", cfg.UISettings.AutoWidth)
	v.SetDefault("ui.show_help", cfg.UISettings.ShowHelp)
	v.SetDefault("ui.autosave_on_exit", cfg.UISettings.AutosaveOnExit)
}

// normalize trims blank titles and clamps values the control cannot use
func normalize(cfg *Config) {
	titles := cfg.Control.Titles[:0:0]
	for _, title := range cfg.Control.Titles {
		if title = strings.TrimSpace(title); title != "" {
			titles = append(titles, title)
		}
	}
	if len(titles) == 0 {
		titles = DefaultTitles()
	}
	cfg.Control.Titles = titles

	if cfg.Control.Selected < 0 || cfg.Control.Selected >= len(titles) {
		cfg.Control.Selected = 0
	}
	if cfg.Control.Slider.Height < 0 {
		cfg.Control.Slider.Height = 0
	}
	if cfg.Control.Slider.DurationMS < 0 {
		cfg.Control.Slider.DurationMS = 0
	}
	if cfg.Control.Frame.Width < 0 {
		cfg.Control.Frame.Width = 0
	}
	if cfg.Control.Frame.Height < 1 {
		cfg.Control.Frame.Height = 1
	}
}

// DefaultTitles returns the titles a control starts with
func DefaultTitles() []string {
	return []string{"1", "2"}
}

// DefaultDescription returns the description of a freshly constructed control
func DefaultDescription() ControlDescription {
	return ControlDescription{
		Name:                      "segments",
		Titles:                    DefaultTitles(),
		SelectedTextColor:         "15",
		UnselectedTextColor:       "0",
		SelectedBackgroundColor:   "0",
		UnselectedBackgroundColor: "15",
		SelectedFont:              state.Font{Bold: true},
		BorderColor:               "250",
		ShowBorders:               true,
		Slider: SliderDescription{
			Height:     1,
			Color:      "9",
			DurationMS: 250,
		},
		Frame: FrameDescription{
			Width:  40,
			Height: 3,
		},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Control: DefaultDescription(),
		UISettings: UISettings{
			ShowHelp: true,
		},
	}
}
