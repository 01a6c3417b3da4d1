// Package server implements the server information commands.
package server

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

func fetchGuild(s *discordgo.Session, guildID string) (*discordgo.Guild, error) {
	guild, err := s.State.Guild(guildID)
	if err == nil {
		return guild, nil
	}
	return s.Guild(guildID)
}

func fetchChannels(s *discordgo.Session, guildID string) ([]*discordgo.Channel, error) {
	if guild, err := s.State.Guild(guildID); err == nil && len(guild.Channels) > 0 {
		return guild.Channels, nil
	}
	return s.GuildChannels(guildID)
}

// countMembers pages through the member list and tallies humans and bots.
func countMembers(s *discordgo.Session, guildID string) (humans, bots int, err error) {
	after := ""
	for {
		page, pageErr := s.GuildMembers(guildID, after, 1000)
		if pageErr != nil {
			return 0, 0, pageErr
		}
		for _, member := range page {
			if member.User.Bot {
				bots++
			} else {
				humans++
			}
		}
		if len(page) < 1000 {
			return humans, bots, nil
		}
		after = page[len(page)-1].User.ID
	}
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
