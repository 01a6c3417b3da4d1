package command

import "github.com/bwmarrin/discordgo"

// OptionMap indexes a slash interaction's options by name.
func OptionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// StringOption returns the named string option, or def when absent.
func StringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name, def string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return def
}

// IntOption returns the named integer option, or def when absent.
func IntOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, def int64) int64 {
	if opt, ok := opts[name]; ok {
		return opt.IntValue()
	}
	return def
}

// BoolOption returns the named boolean option, or def when absent.
func BoolOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, def bool) bool {
	if opt, ok := opts[name]; ok {
		return opt.BoolValue()
	}
	return def
}

// UserOption resolves the named user option, or nil when absent.
func UserOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, s *discordgo.Session) *discordgo.User {
	if opt, ok := opts[name]; ok {
		return opt.UserValue(s)
	}
	return nil
}

// RoleOption resolves the named role option, or nil when absent.
func RoleOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, s *discordgo.Session, guildID string) *discordgo.Role {
	if opt, ok := opts[name]; ok {
		return opt.RoleValue(s, guildID)
	}
	return nil
}
