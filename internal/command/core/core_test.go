package core

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MubtasimTazwer/utility-bot/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestFormatHistoryNewestFirst(t *testing.T) {
	when := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	records := []storage.CommandHistoryRecord{
		{Username: "alice", ChannelName: "general", Command: "kick", Datetime: when},
		{Username: "bob", ChannelName: "general", Command: "ban", Datetime: when.Add(time.Minute)},
	}

	out := formatHistory(records)

	assert.True(t, strings.HasPrefix(out, codeLeftBlockWrapper))
	assert.True(t, strings.HasSuffix(out, codeRightBlockWrapper))
	assert.Less(t, strings.Index(out, "/ban"), strings.Index(out, "/kick"))
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "#general")
}

func TestFormatHistoryRespectsMessageLimit(t *testing.T) {
	var records []storage.CommandHistoryRecord
	for i := 0; i < 200; i++ {
		records = append(records, storage.CommandHistoryRecord{
			Username:    fmt.Sprintf("user-%d", i),
			ChannelName: strings.Repeat("x", 40),
			Command:     "serverinfo",
			Datetime:    time.Now().UTC(),
		})
	}

	out := formatHistory(records)
	assert.LessOrEqual(t, len(out), discordMaxMessageLength)
}
