package roles

import (
	"testing"

	"github.com/MubtasimTazwer/utility-bot/internal/command"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"", 0, true},
		{"#ff0000", 0xff0000, true},
		{"ff0000", 0xff0000, true},
		{"#00FF7F", 0x00ff7f, true},
		{"0", 0, true},
		{"not-a-color", 0, false},
		{"#1234567", 0, false},
	}

	for _, tt := range tests {
		got, cmdErr := parseHexColor(tt.input)
		if tt.ok {
			require.Nil(t, cmdErr, tt.input)
			assert.Equal(t, tt.want, got, tt.input)
		} else {
			require.NotNil(t, cmdErr, tt.input)
			assert.Equal(t, command.KindValidation, cmdErr.Kind, tt.input)
		}
	}
}
