package internal

import (
	"strings"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	// Colours toggles colorized section headers.
	Colours bool `env:"COLOURS,default=true"`
	// DemoFilter restricts the run to a comma-separated list of demo
	// names. Empty means run everything.
	DemoFilter string `env:"DEMO_FILTER"`
	// MirrorToLog duplicates every demo line into structured logs.
	MirrorToLog bool `env:"MIRROR_TO_LOG,default=false"`
}

// Demos parses the filter into demo names, dropping empty entries.
func (c Config) Demos() []string {
	if c.DemoFilter == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(c.DemoFilter, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
