package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind ErrorKind
		msg  string
	}{
		{"validation", Validationf("Amount must be between %d and %d.", 1, 100), KindValidation, "Amount must be between 1 and 100."},
		{"permission", Permissionf("You cannot moderate the server owner."), KindPermission, "You cannot moderate the server owner."},
		{"not found", NotFoundf("No poll found for that message."), KindNotFound, "No poll found for that message."},
		{"rejection", ExternalRejection("ban the member", fmt.Errorf("HTTP 403")), KindExternalRejection, "Failed to ban the member: HTTP 403"},
		{"unavailable", ExternalUnavailable("Live scores"), KindExternalUnavailable, "Live scores is currently unavailable. Try again later."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestAsError(t *testing.T) {
	cmdErr, ok := AsError(fmt.Errorf("wrapped: %w", Validationf("bad input")))
	require.True(t, ok)
	assert.Equal(t, KindValidation, cmdErr.Kind)

	_, ok = AsError(fmt.Errorf("plain failure"))
	assert.False(t, ok)
}
