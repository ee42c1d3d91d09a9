package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/zarr-ls/internal/app"
	"github.com/atomicstack/zarr-ls/internal/config"
	"github.com/atomicstack/zarr-ls/internal/driver"
	"github.com/atomicstack/zarr-ls/internal/logging"
	"github.com/atomicstack/zarr-ls/internal/logging/events"
	"github.com/google/uuid"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetSession(uuid.NewString())
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	status := 0
	if err := app.Run(runtimeCfg.App); err != nil {
		status = exitStatus(err)
	}
	logging.Close()
	os.Exit(status)
}

// exitStatus reports err and returns the process status. Errors that ended
// a session were already printed by the driver.
func exitStatus(err error) int {
	var sessionErr *driver.SessionError
	if !errors.As(err, &sessionErr) {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}

func traceStartup(cfg config.Config) {
	events.App.Start(map[string]interface{}{"startup": newStartupInfo(cfg)})
}

// startupInfo is the runtime context recorded once per process.
type startupInfo struct {
	Args       []string          `json:"argv"`
	Flags      map[string]string `json:"flags"`
	Start      string            `json:"start"`
	Plain      bool              `json:"plain"`
	Watch      bool              `json:"watch"`
	LogFile    string            `json:"log_file"`
	Executable string            `json:"executable,omitempty"`
	Cwd        string            `json:"cwd,omitempty"`
	Problems   []string          `json:"problems,omitempty"`
	Terminals  []terminalProbe   `json:"terminals"`
}

type terminalProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newStartupInfo(cfg config.Config) startupInfo {
	info := startupInfo{
		Args:      cfg.Args,
		Flags:     cfg.Flags,
		Start:     cfg.App.Start,
		Plain:     cfg.App.Plain,
		Watch:     cfg.App.Watch,
		LogFile:   logging.Path(),
		Terminals: probeTerminals(),
	}
	if exe, err := os.Executable(); err == nil {
		info.Executable = exe
	} else {
		info.Problems = append(info.Problems, "executable: "+err.Error())
	}
	if cwd, err := os.Getwd(); err == nil {
		info.Cwd = cwd
	} else {
		info.Problems = append(info.Problems, "cwd: "+err.Error())
	}
	return info
}

// probeTerminals reports which standard descriptors are terminals, and
// their sizes.
func probeTerminals() []terminalProbe {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	probes := make([]terminalProbe, len(files))
	for i, f := range files {
		probe := terminalProbe{Name: names[i]}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			probe.Terminal = true
			if w, h, err := term.GetSize(fd); err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width, probe.Height = w, h
			}
		}
		probes[i] = probe
	}
	return probes
}
