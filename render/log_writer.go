package render

import (
	"log/slog"
	"strings"
)

// LogWriter is an io.Writer that mirrors a demo's printed lines into
// the application's slog.Logger, tagged with the demo name so runs of
// several demos stay traceable.
type LogWriter struct {
	logger *slog.Logger
	demo   string
}

func NewLogWriter(logger *slog.Logger, demo string) *LogWriter {
	return &LogWriter{logger: logger, demo: demo}
}

// Write implements io.Writer. Trailing newlines are stripped before
// logging so slog does not emit blank records.
func (w *LogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	if msg != "" {
		w.logger.Info(msg, "demo", w.demo)
	}
	return len(p), nil
}
