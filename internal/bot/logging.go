package bot

import (
	"log"
	"time"

	"github.com/MubtasimTazwer/utility-bot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// LogCommand records a command execution to the per-guild history journal,
// resolving channel and guild names from state where possible.
func LogCommand(s *discordgo.Session, store *storage.Storage, guildID, channelID, userID, username, commandName string) error {
	channelName := ""
	channel, err := s.State.Channel(channelID)
	if err != nil {
		channel, err = s.Channel(channelID)
		if err != nil {
			log.Println("[WARN] Failed to fetch channel:", err)
		}
	}
	if channel != nil {
		channelName = channel.Name
	}

	guildName := ""
	guild, err := s.State.Guild(guildID)
	if err != nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			log.Println("[WARN] Failed to fetch guild:", err)
		}
	}
	if guild != nil {
		guildName = guild.Name
	}

	return store.AppendCommandToHistory(guildID, storage.CommandHistoryRecord{
		ChannelID:   channelID,
		ChannelName: channelName,
		GuildName:   guildName,
		UserID:      userID,
		Username:    username,
		Command:     commandName,
		Datetime:    time.Now().UTC(),
	})
}

// ResolveUser extracts the acting user from an interaction, whichever of the
// guild-member or DM shapes the event arrived in.
func ResolveUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{ID: "unknown", Username: "Unknown"}
}
