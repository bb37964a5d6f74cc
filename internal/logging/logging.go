package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// LevelEnv selects the log level (trace, debug, info, warn, error, off)
	LevelEnv = "PROJECT_IDENTITY_LOG_LEVEL"
	// JSONEnv switches to JSON log lines when set to "1"
	JSONEnv = "PROJECT_IDENTITY_JSON_LOG"
)

// New creates an hclog logger with standard settings
func New(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv(JSONEnv) == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// Level returns the configured log level from the environment
func Level() string {
	level := os.Getenv(LevelEnv)
	if level == "" {
		level = "warn"
	}
	return level
}

// Open returns a logger writing to path (appending), or a logger that
// discards everything when path is empty. The returned close func is
// never nil.
func Open(name, path string) (hclog.Logger, func() error, error) {
	if path == "" {
		return hclog.NewNullLogger(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return New(name, Level(), f), f.Close, nil
}
