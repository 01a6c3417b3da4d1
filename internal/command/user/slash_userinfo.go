// Package user implements the user profile commands.
package user

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"
	"github.com/MubtasimTazwer/utility-bot/internal/permissions"

	"github.com/bwmarrin/discordgo"
)

type UserInfoCommand struct{}

func (c *UserInfoCommand) Name() string        { return "userinfo" }
func (c *UserInfoCommand) Description() string { return "Get detailed information about a user" }

func (c *UserInfoCommand) Group() string    { return "user" }
func (c *UserInfoCommand) Category() string { return "👤 User Information" }

func (c *UserInfoCommand) UserPermissions() []int64 { return nil }

func (c *UserInfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user to get information about (defaults to yourself)",
			},
		},
	}
}

func (c *UserInfoCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	target := command.UserOption(command.OptionMap(e), "user", s)
	if target == nil {
		target = e.Member.User
	}

	member, err := fetchMember(s, e.GuildID, target.ID)
	if err != nil {
		return command.NotFoundf("That member is not in this server.")
	}
	guild, err := fetchGuild(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("resolve the server", err)
	}

	created, _ := discordgo.SnowflakeTimestamp(target.ID)
	now := time.Now().UTC()

	dates := fmt.Sprintf("**Account Created:** <t:%d:F>\n**Account Age:** %d days",
		created.Unix(), int(now.Sub(created).Hours()/24))
	if !member.JoinedAt.IsZero() {
		dates += fmt.Sprintf("\n**Joined Server:** <t:%d:F>\n**Member For:** %d days",
			member.JoinedAt.Unix(), int(now.Sub(member.JoinedAt).Hours()/24))
	}

	roles := memberRoles(guild, member)
	color := embed.ColorInfo
	if len(roles) > 0 && roles[0].Color != 0 {
		color = roles[0].Color
	}

	b := embed.New().
		Title(fmt.Sprintf("👤 %s", displayName(member))).
		Color(color).
		Thumbnail(target.AvatarURL("1024")).
		Field("📝 Basic Info", fmt.Sprintf(
			"**Username:** %s\n**ID:** `%s`\n**Bot:** %s",
			target.Username, target.ID, yesNo(target.Bot),
		), true).
		Field("📅 Dates", dates, true)

	if len(roles) > 0 {
		var mentions []string
		for i, role := range roles {
			if i == 10 {
				mentions = append(mentions, fmt.Sprintf("... and %d more", len(roles)-10))
				break
			}
			mentions = append(mentions, fmt.Sprintf("<@&%s>", role.ID))
		}
		b.Field(fmt.Sprintf("🎭 Roles (%d)", len(roles)), strings.Join(mentions, ", "), false)
	}

	var serverInfo []string
	if member.Nick != "" {
		serverInfo = append(serverInfo, fmt.Sprintf("**Nickname:** %s", member.Nick))
	}
	if perm := keyPermission(permissions.Snapshot(guild, member).Permissions); perm != "" {
		serverInfo = append(serverInfo, fmt.Sprintf("**Key Permissions:** %s", perm))
	}
	if len(roles) > 0 {
		serverInfo = append(serverInfo, fmt.Sprintf("**Top Role:** <@&%s>", roles[0].ID))
	}
	if member.CommunicationDisabledUntil != nil && member.CommunicationDisabledUntil.After(now) {
		serverInfo = append(serverInfo, fmt.Sprintf("**Timed Out Until:** <t:%d:F>", member.CommunicationDisabledUntil.Unix()))
	}
	if member.PremiumSince != nil {
		serverInfo = append(serverInfo, fmt.Sprintf("**Boosting Since:** <t:%d:F>", member.PremiumSince.Unix()))
	}
	if len(serverInfo) > 0 {
		b.Field("🏠 Server Info", strings.Join(serverInfo, "\n"), true)
	}

	if target.Avatar != "" {
		b.Field("🖼️ Avatar", fmt.Sprintf("[Download Avatar](%s)", target.AvatarURL("1024")), true)
	}

	b.Footer(fmt.Sprintf("Requested by %s", e.Member.User.Username), e.Member.User.AvatarURL(""))

	return bot.RespondEmbed(s, e, b.Build())
}

// memberRoles resolves a member's role IDs against the guild and sorts them
// highest rank first.
func memberRoles(guild *discordgo.Guild, member *discordgo.Member) []*discordgo.Role {
	byID := make(map[string]*discordgo.Role, len(guild.Roles))
	for _, role := range guild.Roles {
		byID[role.ID] = role
	}
	var roles []*discordgo.Role
	for _, id := range member.Roles {
		if role, exists := byID[id]; exists {
			roles = append(roles, role)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Position > roles[j].Position })
	return roles
}

func keyPermission(perms int64) string {
	checks := []struct {
		bit  int64
		name string
	}{
		{discordgo.PermissionAdministrator, "Administrator"},
		{discordgo.PermissionManageServer, "Manage Server"},
		{discordgo.PermissionManageRoles, "Manage Roles"},
		{discordgo.PermissionManageChannels, "Manage Channels"},
		{discordgo.PermissionKickMembers, "Kick Members"},
		{discordgo.PermissionBanMembers, "Ban Members"},
	}
	for _, check := range checks {
		if perms&check.bit != 0 {
			return check.name
		}
	}
	return ""
}

func init() {
	command.Register(command.Apply(
		&UserInfoCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
