package permissions

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCheckHierarchy(t *testing.T) {
	tests := []struct {
		name    string
		actor   Member
		target  Member
		allowed bool
	}{
		{
			name:    "owner on self denied",
			actor:   Member{ID: "1", IsOwner: true, TopRolePos: 10},
			target:  Member{ID: "1", IsOwner: true, TopRolePos: 10},
			allowed: false,
		},
		{
			name:    "owner on anyone allowed regardless of rank",
			actor:   Member{ID: "1", IsOwner: true, TopRolePos: 1},
			target:  Member{ID: "2", TopRolePos: 99},
			allowed: true,
		},
		{
			name:    "non-owner on owner denied",
			actor:   Member{ID: "2", TopRolePos: 99},
			target:  Member{ID: "1", IsOwner: true, TopRolePos: 1},
			allowed: false,
		},
		{
			name:    "self action denied",
			actor:   Member{ID: "3", TopRolePos: 5},
			target:  Member{ID: "3", TopRolePos: 5},
			allowed: false,
		},
		{
			name:    "equal rank denied",
			actor:   Member{ID: "3", TopRolePos: 5},
			target:  Member{ID: "4", TopRolePos: 5},
			allowed: false,
		},
		{
			name:    "higher target rank denied",
			actor:   Member{ID: "3", TopRolePos: 5},
			target:  Member{ID: "4", TopRolePos: 6},
			allowed: false,
		},
		{
			name:    "lower target rank allowed",
			actor:   Member{ID: "3", TopRolePos: 5},
			target:  Member{ID: "4", TopRolePos: 4},
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := CheckHierarchy(tt.actor, tt.target)
			assert.Equal(t, tt.allowed, got)
			assert.NotEmpty(t, reason)
			assert.Equal(t, tt.allowed, CanModerate(tt.actor, tt.target))
		})
	}
}

func TestCanManageRole(t *testing.T) {
	manageRoles := int64(discordgo.PermissionManageRoles)

	tests := []struct {
		name  string
		actor Member
		role  Role
		want  bool
	}{
		{"everyone never manageable", Member{IsOwner: true}, Role{IsEveryone: true}, false},
		{"owner manages any other role", Member{IsOwner: true, TopRolePos: 1}, Role{Position: 50}, true},
		{"manage-roles below top role", Member{TopRolePos: 10, Permissions: manageRoles}, Role{Position: 5}, true},
		{"manage-roles at equal rank denied", Member{TopRolePos: 10, Permissions: manageRoles}, Role{Position: 10}, false},
		{"manage-roles above rank denied", Member{TopRolePos: 10, Permissions: manageRoles}, Role{Position: 11}, false},
		{"no capability denied", Member{TopRolePos: 10}, Role{Position: 5}, false},
		{"administrator below top role", Member{TopRolePos: 10, Permissions: discordgo.PermissionAdministrator}, Role{Position: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanManageRole(tt.actor, tt.role))
		})
	}
}

func TestBotCanManageRole(t *testing.T) {
	bot := Member{TopRolePos: 10, Permissions: int64(discordgo.PermissionManageRoles)}

	assert.True(t, BotCanManageRole(bot, Role{Position: 5}))
	assert.False(t, BotCanManageRole(bot, Role{Position: 5, Managed: true}))
	assert.False(t, BotCanManageRole(bot, Role{Position: 5, IsEveryone: true}))
	assert.False(t, BotCanManageRole(bot, Role{Position: 10}))
	assert.False(t, BotCanManageRole(Member{TopRolePos: 10}, Role{Position: 5}))
}

func TestHasModerationPerms(t *testing.T) {
	assert.True(t, HasModerationPerms(int64(discordgo.PermissionKickMembers)))
	assert.True(t, HasModerationPerms(int64(discordgo.PermissionBanMembers)))
	assert.True(t, HasModerationPerms(int64(discordgo.PermissionManageRoles)))
	assert.True(t, HasModerationPerms(discordgo.PermissionAdministrator))
	assert.False(t, HasModerationPerms(int64(discordgo.PermissionSendMessages)))
	assert.False(t, HasModerationPerms(0))
}

func TestSnapshot(t *testing.T) {
	guild := &discordgo.Guild{
		ID:      "g1",
		OwnerID: "owner",
		Roles: []*discordgo.Role{
			{ID: "g1", Position: 0, Permissions: int64(discordgo.PermissionSendMessages)},
			{ID: "r1", Position: 3, Permissions: int64(discordgo.PermissionKickMembers)},
			{ID: "r2", Position: 7, Permissions: int64(discordgo.PermissionBanMembers)},
		},
	}
	member := &discordgo.Member{
		User:  &discordgo.User{ID: "u1"},
		Roles: []string{"r1", "r2"},
	}

	m := Snapshot(guild, member)
	assert.Equal(t, "u1", m.ID)
	assert.False(t, m.IsOwner)
	assert.Equal(t, 7, m.TopRolePos)
	assert.NotZero(t, m.Permissions&int64(discordgo.PermissionKickMembers))
	assert.NotZero(t, m.Permissions&int64(discordgo.PermissionBanMembers))
	assert.NotZero(t, m.Permissions&int64(discordgo.PermissionSendMessages))

	owner := Snapshot(guild, &discordgo.Member{User: &discordgo.User{ID: "owner"}})
	assert.True(t, owner.IsOwner)
}

func TestRoleSnapshotEveryone(t *testing.T) {
	guild := &discordgo.Guild{ID: "g1"}
	r := RoleSnapshot(guild, &discordgo.Role{ID: "g1", Name: "@everyone"})
	assert.True(t, r.IsEveryone)

	other := RoleSnapshot(guild, &discordgo.Role{ID: "r9", Name: "mods", Position: 4})
	assert.False(t, other.IsEveryone)
	assert.Equal(t, 4, other.Position)
}
