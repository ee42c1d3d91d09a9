package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadArgsReadsConfigFile(t *testing.T) {
	path := writeConfig(t, "width: 90\nheight: 20\nfooter: true\nwatch: false\nlog_file: /tmp/from-file.log\n")
	cfg, err := LoadArgs(nil, []string{"ZARR_LS_CONFIG=" + path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 || cfg.App.Height != 20 || !cfg.App.ShowFooter || cfg.App.Watch {
		t.Fatalf("file settings not applied: %+v", cfg.App)
	}
	if cfg.Logging.FilePath != "/tmp/from-file.log" {
		t.Fatalf("unexpected log file %q", cfg.Logging.FilePath)
	}
	if cfg.Flags["config"] != path {
		t.Fatalf("expected config path recorded, got %q", cfg.Flags["config"])
	}
}

func TestLoadArgsPrecedence(t *testing.T) {
	path := writeConfig(t, "width: 90\nheight: 20\n")
	env := []string{"ZARR_LS_CONFIG=" + path, "ZARR_LS_HEIGHT=30"}
	cfg, err := LoadArgs([]string{"-width", "120"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 30 {
		t.Fatalf("expected flag > env > file, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.Watch {
		t.Fatal("keys missing from the file should keep their defaults")
	}
}

func TestLoadArgsMalformedConfig(t *testing.T) {
	path := writeConfig(t, "width: [oops\n")
	_, err := LoadArgs(nil, []string{"ZARR_LS_CONFIG=" + path})
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestConfigPath(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{}, ""},
		{map[string]string{"HOME": "/home/u"}, "/home/u/.config/zarr-ls/config.yaml"},
		{map[string]string{"HOME": "/home/u", "XDG_CONFIG_HOME": "/xdg"}, "/xdg/zarr-ls/config.yaml"},
		{map[string]string{"XDG_CONFIG_HOME": "/xdg", envConfig: ""}, ""},
		{map[string]string{envConfig: "/etc/z.yaml"}, "/etc/z.yaml"},
	}
	for _, tc := range cases {
		if got := configPath(tc.env); got != tc.want {
			t.Fatalf("configPath(%v) = %q, want %q", tc.env, got, tc.want)
		}
	}
}

func TestLoadFileMissingIsDefaults(t *testing.T) {
	s := defaultSettings()
	if err := loadFile(filepath.Join(t.TempDir(), "absent.yaml"), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != defaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}
