package update

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type RuntimeConfig struct {
	DBPath         string `toml:"db_path"`
	LogPath        string `toml:"log_path"`
	DebounceMillis int    `toml:"debounce_millis"`
	ToastMillis    int    `toml:"toast_millis"`
	DarkDefault    bool   `toml:"dark_default"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	base := "."
	if dir, err := os.UserConfigDir(); err == nil {
		base = filepath.Join(dir, "listkeep")
	}
	return RuntimeConfig{
		DBPath:         filepath.Join(base, "listkeep.db"),
		LogPath:        filepath.Join(base, "listkeep.log"),
		DebounceMillis: 400,
		ToastMillis:    2500,
		DarkDefault:    false,
	}
}

// LoadRuntimeConfig overlays a TOML file on top of base. A missing file is
// not an error; a malformed one is.
func LoadRuntimeConfig(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, err
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("LISTKEEP_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("LISTKEEP_LOG_PATH")); v != "" {
		cfg.LogPath = v
	}
	if v, ok := getEnvInt("LISTKEEP_DEBOUNCE_MILLIS"); ok && v > 0 {
		cfg.DebounceMillis = v
	}
	if v, ok := getEnvInt("LISTKEEP_TOAST_MILLIS"); ok && v > 0 {
		cfg.ToastMillis = v
	}
	if v, ok := getEnvBool("LISTKEEP_DARK_DEFAULT"); ok {
		cfg.DarkDefault = v
	}
	return cfg
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
