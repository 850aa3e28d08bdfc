package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LogFileName is the name of the log file inside the log directory.
const LogFileName = "termify.log"

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	RunID         string // tags every line of this run; generated when empty
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// NewRunID returns a short random id for one CLI invocation.
func NewRunID() string {
	return uuid.NewString()[:8]
}

// NewWithFile creates a logger appending JSON lines to LogDir/termify.log
// and, when WriteToStderr is set, to stderr as well. The returned cleanup
// closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(fileCfg.LogDir, 0o755); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("create log dir: %w", err)
	}

	runID := fileCfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	file, err := OpenRotatingFile(filepath.Join(fileCfg.LogDir, LogFileName), RotateOptions{
		MaxBytes:   int64(orDefault(fileCfg.MaxSizeMB, 10)) << 20,
		MaxBackups: orDefault(fileCfg.MaxBackups, 5),
		MaxAge:     time.Duration(orDefault(fileCfg.MaxAgeDays, 14)) * 24 * time.Hour,
		Compress:   fileCfg.Compress,
	})
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	writers := []io.Writer{file}
	if fileCfg.WriteToStderr {
		writers = append(writers, formatWriter(cfg, os.Stderr))
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("run", runID).
		Logger()

	cleanup := func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
