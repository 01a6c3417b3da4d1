// Package moderation implements the member moderation commands: kick, ban,
// unban, timeout, and clear.
package moderation

import (
	"fmt"
	"log"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"
	"github.com/MubtasimTazwer/utility-bot/internal/permissions"

	"github.com/bwmarrin/discordgo"
)

// moderationPerms gates every command in this package; holding any one of
// them is enough.
var moderationPerms = []int64{
	discordgo.PermissionKickMembers,
	discordgo.PermissionBanMembers,
	discordgo.PermissionManageRoles,
}

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

// checkHierarchy re-snapshots both members and validates the actor may act on
// the target. Role state can change between invocations, so this runs fresh
// on every call.
func checkHierarchy(s *discordgo.Session, e *discordgo.InteractionCreate, targetID string) *command.Error {
	guild, err := fetchGuild(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("resolve the server", err)
	}
	target, err := fetchMember(s, e.GuildID, targetID)
	if err != nil {
		return command.NotFoundf("That member is not in this server.")
	}

	actor := permissions.Snapshot(guild, e.Member)
	allowed, reason := permissions.CheckHierarchy(actor, permissions.Snapshot(guild, target))
	if !allowed {
		return command.Permissionf("%s", reason)
	}
	return nil
}

// notifyTarget DMs the member about the action taken against them. Failure is
// expected when the member has DMs closed and never aborts the main action.
func notifyTarget(s *discordgo.Session, e *discordgo.InteractionCreate, target *discordgo.User, title, reason string, color int) {
	guildName := e.GuildID
	if guild, err := fetchGuild(s, e.GuildID); err == nil {
		guildName = guild.Name
	}
	dm := embed.New().
		Title(title).
		Description(fmt.Sprintf("From **%s**", guildName)).
		Color(color).
		Field("Reason", reason, false).
		Field("By", fmt.Sprintf("<@%s>", e.Member.User.ID), true).
		Build()
	if err := bot.DirectMessageEmbed(s, target.ID, dm); err != nil {
		log.Printf("[WARN] Failed to DM %s about %s: %v", target.ID, title, err)
	}
}

func auditReason(reason string, actor *discordgo.User) string {
	return fmt.Sprintf("%s - by %s", reason, actor.Username)
}
