package moderation

import (
	"testing"

	"github.com/MubtasimTazwer/utility-bot/internal/command"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestValidateClearAmount(t *testing.T) {
	tests := []struct {
		amount int64
		ok     bool
	}{
		{0, false},
		{1, true},
		{100, true},
		{101, false},
	}

	for _, tt := range tests {
		err := validateClearAmount(tt.amount)
		if tt.ok {
			assert.Nil(t, err, "amount %d", tt.amount)
		} else {
			assert.NotNil(t, err, "amount %d", tt.amount)
			assert.Equal(t, command.KindValidation, err.Kind)
		}
	}
}

func TestValidateTimeoutDuration(t *testing.T) {
	tests := []struct {
		minutes int64
		ok      bool
	}{
		{0, false},
		{1, true},
		{40320, true},
		{40321, false},
	}

	for _, tt := range tests {
		err := validateTimeoutDuration(tt.minutes)
		if tt.ok {
			assert.Nil(t, err, "minutes %d", tt.minutes)
		} else {
			assert.NotNil(t, err, "minutes %d", tt.minutes)
			assert.Equal(t, command.KindValidation, err.Kind)
		}
	}
}

func TestValidateDeleteDays(t *testing.T) {
	tests := []struct {
		days int64
		ok   bool
	}{
		{-1, false},
		{0, true},
		{7, true},
		{8, false},
	}

	for _, tt := range tests {
		err := validateDeleteDays(tt.days)
		if tt.ok {
			assert.Nil(t, err, "days %d", tt.days)
		} else {
			assert.NotNil(t, err, "days %d", tt.days)
			assert.Equal(t, command.KindValidation, err.Kind)
		}
	}
}

func TestAuditReason(t *testing.T) {
	actor := &discordgo.User{Username: "mod"}
	assert.Equal(t, "Spamming - by mod", auditReason("Spamming", actor))
}
