//go:generate go run go.uber.org/mock/mockgen -source=demo_service.go -destination=../mocks/mock_demo_service.go -package=mocks
package services

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"type-lab/errors"

	"github.com/samber/lo"
)

type IDemoService interface {
	Names() []string
	Run(name string, out io.Writer) (Report, error)
	RunAll(out io.Writer) ([]Report, error)
}

// Report summarizes one demo execution.
type Report struct {
	Name     string
	Duration time.Duration
	Lines    int
}

type demoFunc func(out io.Writer) error

type demo struct {
	name string
	fn   demoFunc
}

// DemoService runs the registered demos in a fixed order.
// Demos are pure prints: no state survives a run.
type DemoService struct {
	demos  []demo
	logger *slog.Logger
	now    func() time.Time
}

func NewDemoService(logger *slog.Logger) IDemoService {
	return &DemoService{
		demos: []demo{
			{name: "enums", fn: runEnums},
			{name: "rectangles", fn: runRectangles},
			{name: "structures", fn: runStructures},
			{name: "restaurant", fn: runRestaurant},
		},
		logger: logger,
		now:    time.Now,
	}
}

// Names lists the demos in execution order.
func (s *DemoService) Names() []string {
	return lo.Map(s.demos, func(d demo, _ int) string {
		return d.name
	})
}

func (s *DemoService) Run(name string, out io.Writer) (Report, error) {
	for _, d := range s.demos {
		if d.name == name {
			return s.run(d, out)
		}
	}
	return Report{}, fmt.Errorf("%w: %q", errors.ErrUnknownDemo, name)
}

// RunAll executes every registered demo exactly once, in order.
// The first failing demo aborts the run.
func (s *DemoService) RunAll(out io.Writer) ([]Report, error) {
	reports := make([]Report, 0, len(s.demos))
	for _, d := range s.demos {
		report, err := s.run(d, out)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *DemoService) run(d demo, out io.Writer) (Report, error) {
	s.logger.Debug("running demo", "demo", d.name)

	counter := &lineCountingWriter{next: out}
	start := s.now()
	if err := d.fn(counter); err != nil {
		return Report{}, fmt.Errorf("demo %s: %w", d.name, err)
	}

	report := Report{
		Name:     d.name,
		Duration: s.now().Sub(start),
		Lines:    counter.lines,
	}
	s.logger.Debug("demo finished", "demo", d.name, "lines", report.Lines)
	return report, nil
}

// lineCountingWriter counts newlines on their way through.
type lineCountingWriter struct {
	next  io.Writer
	lines int
}

func (w *lineCountingWriter) Write(p []byte) (int, error) {
	w.lines += bytes.Count(p, []byte{'\n'})
	return w.next.Write(p)
}
