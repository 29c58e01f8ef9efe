package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Prefs PrefsConfig
	App   AppConfig
}

// UIConfig holds window and chrome settings.
type UIConfig struct {
	IconPath       string `mapstructure:"icon_path"`
	Title          string
	Width          int
	Height         int
	Theme          string
	CornerDiameter int `mapstructure:"corner_diameter"`
}

// PrefsConfig holds preferences-dialog behaviour.
type PrefsConfig struct {
	// StrictBounds reports malformed axis bounds instead of treating them
	// as absent.
	StrictBounds bool `mapstructure:"strict_bounds"`
}

// AppConfig holds links and identity shown in the help viewer.
type AppConfig struct {
	Website string
	Version string
}

const envPrefix = "MEASUREDESK"

// Themes accepted in ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.icon_path", filepath.Join("data", "icon.png"))
	v.SetDefault("ui.title", "Measuredesk")
	v.SetDefault("ui.width", 960)
	v.SetDefault("ui.height", 640)
	v.SetDefault("ui.theme", ThemeAuto)
	v.SetDefault("ui.corner_diameter", 20)
	v.SetDefault("prefs.strict_bounds", false)
	v.SetDefault("app.website", "https://example.com/measuredesk")
	v.SetDefault("app.version", "dev")
}

// Load reads configuration from path, or when path is empty from
// $MEASUREDESK_CONFIG or config.toml in the user config directory. A
// missing default file is not an error; a missing explicit file is. Env
// var overrides use prefix MEASUREDESK_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "measuredesk"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise surface as broken windows.
func (c Config) Validate() error {
	switch c.UI.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("ui size %dx%d: must be positive", c.UI.Width, c.UI.Height)
	}
	if c.UI.CornerDiameter < 0 {
		return fmt.Errorf("ui.corner_diameter %d: must not be negative", c.UI.CornerDiameter)
	}
	if c.UI.IconPath == "" {
		return errors.New("ui.icon_path: must be set")
	}
	return nil
}
