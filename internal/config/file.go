package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// fileSettings mirrors the flag set. Keys missing from the file keep the
// value already in the struct.
type fileSettings struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Footer  bool   `yaml:"footer"`
	Plain   bool   `yaml:"plain"`
	Watch   bool   `yaml:"watch"`
	Trace   bool   `yaml:"trace"`
	LogFile string `yaml:"log_file"`
}

func defaultSettings() fileSettings {
	return fileSettings{Watch: true}
}

// configPath picks the settings file: ZARR_LS_CONFIG when set (empty
// disables the file), otherwise zarr-ls/config.yaml under the XDG config
// directory.
func configPath(env map[string]string) string {
	if p, ok := env[envConfig]; ok {
		return strings.TrimSpace(p)
	}
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, "zarr-ls", configFileName)
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", "zarr-ls", configFileName)
	}
	return ""
}

// loadFile overlays the YAML document at path onto s. A missing file is
// not an error.
func loadFile(path string, s *fileSettings) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
