package permissions

import (
	"github.com/bwmarrin/discordgo"
)

// Snapshot builds a Member view from live guild and member state. Permissions
// are the member's aggregate guild-level permissions (role permissions OR'd
// together), which is what the hierarchy rules care about.
func Snapshot(guild *discordgo.Guild, member *discordgo.Member) Member {
	m := Member{}
	if member == nil || member.User == nil {
		return m
	}
	m.ID = member.User.ID
	if guild != nil {
		m.IsOwner = guild.OwnerID == member.User.ID
		m.TopRolePos = topRolePosition(guild, member)
		m.Permissions = aggregatePermissions(guild, member)
	}
	return m
}

// RoleSnapshot builds a Role view. The @everyone role shares its ID with the
// guild.
func RoleSnapshot(guild *discordgo.Guild, role *discordgo.Role) Role {
	r := Role{}
	if role == nil {
		return r
	}
	r.ID = role.ID
	r.Name = role.Name
	r.Position = role.Position
	r.Managed = role.Managed
	if guild != nil {
		r.IsEveryone = role.ID == guild.ID
	}
	return r
}

func topRolePosition(guild *discordgo.Guild, member *discordgo.Member) int {
	top := 0
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Position > top {
				top = role.Position
			}
		}
	}
	return top
}

func aggregatePermissions(guild *discordgo.Guild, member *discordgo.Member) int64 {
	var perms int64
	for _, role := range guild.Roles {
		// @everyone applies to every member.
		if role.ID == guild.ID {
			perms |= role.Permissions
			continue
		}
		for _, roleID := range member.Roles {
			if role.ID == roleID {
				perms |= role.Permissions
				break
			}
		}
	}
	return perms
}
