// Package roles implements role management and inspection commands.
package roles

import (
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/permissions"

	"github.com/bwmarrin/discordgo"
)

var roleManagementPerms = []int64{discordgo.PermissionManageRoles}

func fetchGuild(s *discordgo.Session, guildID string) (*discordgo.Guild, error) {
	guild, err := s.State.Guild(guildID)
	if err == nil {
		return guild, nil
	}
	return s.Guild(guildID)
}

// checkManageable verifies both the actor and the bot's own account outrank
// the role, and that the role is assignable at all.
func checkManageable(s *discordgo.Session, e *discordgo.InteractionCreate, role *discordgo.Role) *command.Error {
	guild, err := fetchGuild(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("resolve the server", err)
	}
	snap := permissions.RoleSnapshot(guild, role)

	if snap.IsEveryone {
		return command.Validationf("The @everyone role cannot be managed.")
	}
	if !permissions.CanManageRole(permissions.Snapshot(guild, e.Member), snap) {
		return command.Permissionf("You cannot manage a role higher than or equal to your highest role.")
	}

	me, err := s.State.Member(e.GuildID, s.State.User.ID)
	if err != nil {
		me, err = s.GuildMember(e.GuildID, s.State.User.ID)
		if err != nil {
			return command.ExternalRejection("resolve my own membership", err)
		}
	}
	if !permissions.BotCanManageRole(permissions.Snapshot(guild, me), snap) {
		return command.Permissionf("I cannot manage a role higher than or equal to my highest role.")
	}
	return nil
}

// membersWithRole pages through the guild member list and collects everyone
// holding the role.
func membersWithRole(s *discordgo.Session, guildID, roleID string) ([]*discordgo.Member, error) {
	var holders []*discordgo.Member
	after := ""
	for {
		page, err := s.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, err
		}
		for _, member := range page {
			for _, id := range member.Roles {
				if id == roleID {
					holders = append(holders, member)
					break
				}
			}
		}
		if len(page) < 1000 {
			return holders, nil
		}
		after = page[len(page)-1].User.ID
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
