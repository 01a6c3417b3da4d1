// Package storage persists the per-guild command history journal on top of
// a JSON-file datastore. Polls, reminders, and score sessions deliberately
// stay out of here; see internal/polls and friends.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit = 20

// Storage wraps the underlying datastore with guild-keyed records.
type Storage struct {
	ds *datastore.DataStore
}

// CommandHistoryRecord is one executed command.
type CommandHistoryRecord struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	GuildName   string    `json:"guild_name"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Command     string    `json:"command"`
	Datetime    time.Time `json:"datetime"`
}

// Record is everything stored for one guild.
type Record struct {
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
}

// New opens (or creates) the datastore file at filePath.
func New(ctx context.Context, filePath string) (*Storage, error) {
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// AppendCommandToHistory records a command execution for a guild, keeping
// only the most recent entries.
func (s *Storage) AppendCommandToHistory(guildID string, cmd CommandHistoryRecord) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandsHistoryList = append(record.CommandsHistoryList, cmd)
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}
	return s.ds.Set(guildID, record)
}

// FetchCommandHistory returns a guild's recorded command executions, oldest
// first.
func (s *Storage) FetchCommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}

// getOrCreateGuildRecord loads a guild's record, returning an empty one if
// none exists yet.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	var record Record
	found, err := s.ds.Get(guildID, &record)
	if err != nil {
		return nil, fmt.Errorf("error reading record for guild %s: %w", guildID, err)
	}
	if !found {
		return &Record{CommandsHistoryList: []CommandHistoryRecord{}}, nil
	}
	return &record, nil
}
