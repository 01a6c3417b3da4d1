package user

import "github.com/bwmarrin/discordgo"

func fetchGuild(s *discordgo.Session, guildID string) (*discordgo.Guild, error) {
	guild, err := s.State.Guild(guildID)
	if err == nil {
		return guild, nil
	}
	return s.Guild(guildID)
}

func fetchMember(s *discordgo.Session, guildID, userID string) (*discordgo.Member, error) {
	member, err := s.State.Member(guildID, userID)
	if err == nil {
		return member, nil
	}
	return s.GuildMember(guildID, userID)
}

func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	return member.User.Username
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
