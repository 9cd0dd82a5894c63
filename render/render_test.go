package render

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"type-lab/services"

	"github.com/stretchr/testify/require"
)

func TestHeader_PlainWhenColoursDisabled(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	Header(&out, "rectangles", false)

	req.Equal("  ====== rectangles ======\n", out.String())
}

func TestSummary_OneRowPerReport(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	Summary(&out, []services.Report{
		{Name: "enums", Duration: 12 * time.Microsecond, Lines: 5},
		{Name: "rectangles", Duration: 3 * time.Microsecond, Lines: 4},
	})

	text := out.String()
	req.Contains(text, "enums")
	req.Contains(text, "rectangles")
	req.Contains(text, "5")
	req.Contains(text, "4")
}

func TestLogWriter_MirrorsLinesWithDemoTag(t *testing.T) {
	req := require.New(t)

	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, nil))
	w := NewLogWriter(logger, "structures")

	n, err := w.Write([]byte("snapshot untouched\n"))

	req.NoError(err)
	req.Equal(len("snapshot untouched\n"), n)
	req.Contains(logged.String(), "snapshot untouched")
	req.Contains(logged.String(), "demo=structures")
}

func TestLogWriter_SkipsBlankRecords(t *testing.T) {
	req := require.New(t)

	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, nil))
	w := NewLogWriter(logger, "enums")

	_, err := w.Write([]byte("\n"))

	req.NoError(err)
	req.Empty(logged.String())
}
