package command

import (
	"fmt"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"

	"github.com/bwmarrin/discordgo"
)

// PermissionNames maps discordgo permission bits to the labels Discord shows
// in its own UI. Only the bits this bot's commands require are listed.
var PermissionNames = map[int64]string{
	discordgo.PermissionKickMembers:     "Kick Members",
	discordgo.PermissionBanMembers:      "Ban Members",
	discordgo.PermissionAdministrator:   "Administrator",
	discordgo.PermissionManageChannels:  "Manage Channels",
	discordgo.PermissionManageServer:    "Manage Server",
	discordgo.PermissionManageMessages:  "Manage Messages",
	discordgo.PermissionManageRoles:     "Manage Roles",
	discordgo.PermissionModerateMembers: "Moderate Members",
}

// WithUserPermissionCheck denies the command unless the member holds at least
// one of the command's required permissions. Administrators and the
// configured developer bypass the check.
func WithUserPermissionCheck() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				var s *discordgo.Session
				var e *discordgo.InteractionCreate
				var deps *Deps
				switch v := ctx.(type) {
				case *SlashContext:
					s, e, deps = v.Session, v.Event, v.Deps
				case *ComponentContext:
					s, e, deps = v.Session, v.Event, v.Deps
				default:
					return dispatch(cmd, ctx)
				}

				required := Root(cmd).UserPermissions()
				if len(required) == 0 || e.GuildID == "" || e.Member == nil || e.Member.User == nil {
					return dispatch(cmd, ctx)
				}

				memberPerms, err := s.UserChannelPermissions(e.Member.User.ID, e.ChannelID)
				if err != nil {
					return fmt.Errorf("failed to get user permissions: %w", err)
				}
				if memberPerms&discordgo.PermissionAdministrator != 0 {
					return dispatch(cmd, ctx)
				}
				if deps != nil && deps.Cfg != nil && deps.Cfg.IsDeveloper(e.Member.User.ID) {
					return dispatch(cmd, ctx)
				}

				for _, p := range required {
					if memberPerms&p != 0 {
						return dispatch(cmd, ctx)
					}
				}

				var needed []string
				for _, p := range required {
					name := PermissionNames[p]
					if name == "" {
						name = fmt.Sprintf("0x%x", p)
					}
					needed = append(needed, name)
				}
				return bot.RespondEphemeral(s, e, fmt.Sprintf(
					"You need at least one of the following permissions to run this command:\n`%s`",
					strings.Join(needed, "`, `"),
				))
			},
		}
	}
}
