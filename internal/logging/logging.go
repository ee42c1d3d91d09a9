package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "zarr-ls.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      string
	sessionID    string
	logger       = zap.NewNop()
	sink         *os.File
)

// DefaultPath returns the log file used when none is configured.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), defaultLogFile)
}

// Configure points the shared logger at path. Empty values fall back to
// DefaultPath. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = DefaultPath()
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	if sink != nil {
		_ = sink.Close()
	}
	sink = f
	logPath = path
	rebuild()
}

// SetSession tags every subsequent entry with id.
func SetSession(id string) {
	mu.Lock()
	defer mu.Unlock()
	sessionID = id
	if sink != nil {
		rebuild()
	}
}

// rebuild must be called with mu held.
func rebuild() {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), zapcore.DebugLevel)
	l := zap.New(core)
	if sessionID != "" {
		l = l.With(zap.String("session", sessionID))
	}
	logger = l
}

// Path returns the active log file, or "" when logging is not configured.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close flushes and releases the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	if sink != nil {
		_ = sink.Close()
		sink = nil
	}
	logger = zap.NewNop()
	logPath = ""
}

func current() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Error writes err to the shared log.
func Error(err error) {
	if err == nil {
		return
	}
	current().Error(err.Error())
}

// Warn records a recoverable problem.
func Warn(msg string, fields map[string]interface{}) {
	l := current()
	if len(fields) == 0 {
		l.Warn(msg)
		return
	}
	l.Warn(msg, zap.Any("details", fields))
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes entries.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	l := logger
	mu.Unlock()
	if !enabled {
		return
	}
	if payload == nil {
		l.Debug(event)
		return
	}
	l.Debug(event, zap.Any("payload", payload))
}
