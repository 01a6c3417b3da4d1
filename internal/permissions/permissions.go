// Package permissions answers "may this member act on that member or role"
// using plain snapshots of guild state. The checks are pure so they can be
// exercised without a live session; snapshots must be rebuilt per invocation
// because role state can change between checks.
package permissions

import (
	"github.com/bwmarrin/discordgo"
)

// Member is a point-in-time view of a guild member for permission checks.
type Member struct {
	ID          string
	IsOwner     bool
	TopRolePos  int
	Permissions int64
}

// Role is a point-in-time view of a guild role.
type Role struct {
	ID         string
	Name       string
	Position   int
	Managed    bool
	IsEveryone bool
}

// HasModerationPerms reports whether the permission set carries any of the
// moderation capabilities (kick, ban, manage messages/roles/channels), or
// administrator.
func HasModerationPerms(perms int64) bool {
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	mod := discordgo.PermissionKickMembers |
		discordgo.PermissionBanMembers |
		discordgo.PermissionManageMessages |
		discordgo.PermissionManageRoles |
		discordgo.PermissionManageChannels
	return perms&int64(mod) != 0
}

// HasRoleManagementPerms reports whether the permission set allows managing
// roles.
func HasRoleManagementPerms(perms int64) bool {
	return perms&(discordgo.PermissionAdministrator|discordgo.PermissionManageRoles) != 0
}

// CanModerate reports whether actor may perform a moderation action on
// target. The hierarchy rules are evaluated in order; see CheckHierarchy
// for the user-facing reasons.
func CanModerate(actor, target Member) bool {
	ok, _ := CheckHierarchy(actor, target)
	return ok
}

// CheckHierarchy evaluates the role-hierarchy rules between actor and
// target and returns whether the action is allowed along with a reason
// suitable for showing to the actor. Rules, first match wins:
// owner-on-self denied, owner allowed, target-is-owner denied, self denied,
// equal-or-higher rank denied, otherwise allowed.
func CheckHierarchy(actor, target Member) (bool, string) {
	if actor.IsOwner {
		if actor.ID == target.ID {
			return false, "You cannot perform this action on yourself."
		}
		return true, "Guild owner can moderate any member."
	}
	if target.IsOwner {
		return false, "You cannot moderate the server owner."
	}
	if actor.ID == target.ID {
		return false, "You cannot perform this action on yourself."
	}
	if target.TopRolePos >= actor.TopRolePos {
		return false, "You cannot moderate someone with a higher or equal role."
	}
	return true, "Action allowed."
}

// CanManageRole reports whether actor may assign, remove, or edit the given
// role. The @everyone role is never manageable; otherwise the owner may
// manage anything, and members with administrator or manage-roles may manage
// roles strictly below their top role.
func CanManageRole(actor Member, role Role) bool {
	if role.IsEveryone {
		return false
	}
	if actor.IsOwner {
		return true
	}
	if !HasRoleManagementPerms(actor.Permissions) {
		return false
	}
	return role.Position < actor.TopRolePos
}

// BotCanManageRole reports whether the bot's own service account may touch
// the role. Integration-owned (managed) roles are off limits regardless of
// rank.
func BotCanManageRole(bot Member, role Role) bool {
	if role.IsEveryone || role.Managed {
		return false
	}
	if bot.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionManageRoles) == 0 {
		return false
	}
	return role.Position < bot.TopRolePos
}
