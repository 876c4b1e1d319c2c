package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sandeepkv93/todolist/internal/model"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultExportName     = "todolist-export.db"
	appDirName            = "todolist"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Keymap struct {
	Up              string `toml:"up"`
	Down            string `toml:"down"`
	Toggle          string `toml:"toggle"`
	FocusInput      string `toml:"focus_input"`
	FilterAll       string `toml:"filter_all"`
	FilterActive    string `toml:"filter_active"`
	FilterCompleted string `toml:"filter_completed"`
	CycleFilter     string `toml:"cycle_filter"`
	ClearCompleted  string `toml:"clear_completed"`
	Copy            string `toml:"copy"`
	Palette         string `toml:"palette"`
	Help            string `toml:"help"`
	Quit            string `toml:"quit"`
}

type Config struct {
	DefaultFilter        string `toml:"default_filter"`
	ExportPath           string `toml:"export_path"`
	DebugLog             string `toml:"debug_log"`
	AltScreen            bool   `toml:"alt_screen"`
	Clipboard            bool   `toml:"clipboard"`
	StatusTimeoutSeconds int    `toml:"status_timeout_seconds"`
	Keys                 Keymap `toml:"keys"`
}

func Default() Config {
	return Config{
		DefaultFilter:        "all",
		ExportPath:           DefaultExportName,
		AltScreen:            true,
		Clipboard:            true,
		StatusTimeoutSeconds: 4,
		Keys: Keymap{
			Up:              "k",
			Down:            "j",
			Toggle:          " ",
			FocusInput:      "i",
			FilterAll:       "1",
			FilterActive:    "2",
			FilterCompleted: "3",
			CycleFilter:     "f",
			ClearCompleted:  "C",
			Copy:            "y",
			Palette:         "/",
			Help:            "?",
			Quit:            "q",
		},
	}
}

// ResolvePath returns the default config location under the user config dir,
// falling back to the working directory.
func ResolvePath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillMissingKeys()
	if cfg.ExportPath == "" {
		cfg.ExportPath = DefaultExportName
	}
	return cfg, nil
}

// LoadOrCreate is Load, but writes the defaults to path when it does not exist.
func LoadOrCreate(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return Load(path)
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("TODOLIST_DEFAULT_FILTER"); ok {
		cfg.DefaultFilter = v
	}
	if v, ok := getEnvString("TODOLIST_EXPORT_PATH"); ok {
		cfg.ExportPath = v
	}
	if v, ok := getEnvString("TODOLIST_DEBUG_LOG"); ok {
		cfg.DebugLog = v
	}
	if v, ok := getEnvBool("TODOLIST_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	if v, ok := getEnvBool("TODOLIST_CLIPBOARD"); ok {
		cfg.Clipboard = v
	}
	if v, ok := getEnvInt("TODOLIST_STATUS_TIMEOUT_SECONDS"); ok && v >= 0 {
		cfg.StatusTimeoutSeconds = v
	}
	return cfg
}

func (c Config) Validate() error {
	if _, err := model.ParseFilter(c.DefaultFilter); err != nil {
		return fmt.Errorf("%w: default_filter: %v", ErrInvalidConfig, err)
	}
	if c.StatusTimeoutSeconds < 0 {
		return fmt.Errorf("%w: status_timeout_seconds must be >= 0", ErrInvalidConfig)
	}
	seen := make(map[string]string)
	for name, key := range c.Keys.bindings() {
		if key == "" {
			return fmt.Errorf("%w: keys.%s is empty", ErrInvalidConfig, name)
		}
		if owner, fixed := fixedListKeys[key]; fixed && owner != name {
			return fmt.Errorf("%w: keys.%s uses %q, which is reserved", ErrInvalidConfig, name, key)
		}
		if other, dup := seen[key]; dup {
			return fmt.Errorf("%w: keys.%s and keys.%s both use %q", ErrInvalidConfig, other, name, key)
		}
		seen[key] = name
	}
	return nil
}

// Filter returns the configured start-up filter, All when unset or invalid.
func (c Config) Filter() model.Filter {
	f, err := model.ParseFilter(c.DefaultFilter)
	if err != nil {
		return model.FilterAll
	}
	return f
}

// fixedListKeys are handled by the list regardless of the keymap. A binding
// may only reuse one for the action it already performs.
var fixedListKeys = map[string]string{
	"up":     "up",
	"down":   "down",
	"x":      "toggle",
	"enter":  "toggle",
	"tab":    "focus_input",
	"home":   "",
	"end":    "",
	"g":      "",
	"G":      "",
	"ctrl+c": "",
}

func (k Keymap) bindings() map[string]string {
	return map[string]string{
		"up":               k.Up,
		"down":             k.Down,
		"toggle":           k.Toggle,
		"focus_input":      k.FocusInput,
		"filter_all":       k.FilterAll,
		"filter_active":    k.FilterActive,
		"filter_completed": k.FilterCompleted,
		"cycle_filter":     k.CycleFilter,
		"clear_completed":  k.ClearCompleted,
		"copy":             k.Copy,
		"palette":          k.Palette,
		"help":             k.Help,
		"quit":             k.Quit,
	}
}

func (c *Config) fillMissingKeys() {
	def := Default().Keys
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&c.Keys.Up, def.Up)
	fill(&c.Keys.Down, def.Down)
	fill(&c.Keys.Toggle, def.Toggle)
	fill(&c.Keys.FocusInput, def.FocusInput)
	fill(&c.Keys.FilterAll, def.FilterAll)
	fill(&c.Keys.FilterActive, def.FilterActive)
	fill(&c.Keys.FilterCompleted, def.FilterCompleted)
	fill(&c.Keys.CycleFilter, def.CycleFilter)
	fill(&c.Keys.ClearCompleted, def.ClearCompleted)
	fill(&c.Keys.Copy, def.Copy)
	fill(&c.Keys.Palette, def.Palette)
	fill(&c.Keys.Help, def.Help)
	fill(&c.Keys.Quit, def.Quit)
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
