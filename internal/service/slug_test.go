package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Charity Operations Dashboard", "charity-operations-dashboard"},
		{"already slug", "charity-dashboard", "charity-dashboard"},
		{"punctuation collapsed", "Hello, World!", "hello-world"},
		{"multiple separators", "a  --  b", "a-b"},
		{"leading and trailing junk", "  ...Project One!  ", "project-one"},
		{"digits kept", "Portfolio v2 2024", "portfolio-v2-2024"},
		{"unicode stripped", "café menü", "caf-men"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
