package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Demos(t *testing.T) {
	tests := []struct {
		name     string
		filter   string
		expected []string
	}{
		{name: "Empty filter means run everything", filter: "", expected: nil},
		{name: "Single name", filter: "enums", expected: []string{"enums"}},
		{name: "List with spaces", filter: "enums, rectangles", expected: []string{"enums", "rectangles"}},
		{name: "Stray separators are dropped", filter: ",enums,,", expected: []string{"enums"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Config{DemoFilter: tt.filter}.Demos())
		})
	}
}
