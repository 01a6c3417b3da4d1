package embed

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int
		wantLen int
		cut     bool
	}{
		{"under limit", "hello", 1024, 5, false},
		{"exactly at limit", strings.Repeat("a", 1024), 1024, 1024, false},
		{"one over limit", strings.Repeat("a", 1025), 1024, 1024, true},
		{"far over limit", strings.Repeat("a", 2000), 1024, 1024, true},
		{"empty", "", 1024, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.max)
			assert.Len(t, got, tt.wantLen)
			if tt.cut {
				assert.True(t, strings.HasSuffix(got, "..."))
			} else {
				assert.Equal(t, tt.input, got)
			}
		})
	}
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	// 510 two-byte runes is 1020 bytes; byte 1021 lands mid-rune.
	input := strings.Repeat("é", 600)

	got := Truncate(input, 1024)

	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), 1024)

	trimmed := strings.TrimSuffix(got, "...")
	assert.True(t, utf8.ValidString(trimmed))
	assert.Equal(t, strings.Repeat("é", len(trimmed)/2), trimmed)
}

func TestBuilderDefaults(t *testing.T) {
	e := New().Title("t").Description("d").Build()

	assert.Equal(t, ColorDefault, e.Color)
	assert.Equal(t, "t", e.Title)
	assert.Equal(t, "d", e.Description)
	assert.NotEmpty(t, e.Timestamp)
}

func TestBuilderFieldTruncation(t *testing.T) {
	long := strings.Repeat("x", 2000)
	e := New().Field("name", long, false).Build()

	require.Len(t, e.Fields, 1)
	assert.Len(t, e.Fields[0].Value, 1024)
	assert.True(t, strings.HasSuffix(e.Fields[0].Value, "..."))
}

func TestBuilderColorOverride(t *testing.T) {
	e := New().Color(ColorError).Build()
	assert.Equal(t, ColorError, e.Color)
}
