package logging

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger at the given level ("debug", "info",
// "warn", "error"). An empty level means info.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl := zapcore.InfoLevel
	if s := strings.TrimSpace(level); s != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// LogExtract logs one extracted document.
func LogExtract(log *zap.Logger, kind, code string, records int, duration time.Duration) {
	log.Debug("extracted document",
		zap.String("kind", kind),
		zap.String("code", code),
		zap.Int("records", records),
		zap.Duration("duration", duration))
}

// LogSkip logs a document or directory left out of the output.
func LogSkip(log *zap.Logger, kind, path string, err error) {
	log.Warn("skipped "+kind,
		zap.String("path", path),
		zap.Error(err))
}

// LogWrite logs a generated file.
func LogWrite(log *zap.Logger, path string, bytes int) {
	log.Debug("wrote file",
		zap.String("path", path),
		zap.Int("bytes", bytes))
}

// LogImport logs rows written to the database.
func LogImport(log *zap.Logger, table string, count int, duration time.Duration) {
	log.Info("imported rows",
		zap.String("table", table),
		zap.Int("count", count),
		zap.Int64("duration_ms", duration.Milliseconds()))
}
