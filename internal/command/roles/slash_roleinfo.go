package roles

import (
	"fmt"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type RoleInfoCommand struct{}

func (c *RoleInfoCommand) Name() string        { return "roleinfo" }
func (c *RoleInfoCommand) Description() string { return "Get information about a role" }

func (c *RoleInfoCommand) Group() string    { return "roles" }
func (c *RoleInfoCommand) Category() string { return "🎭 Role Management" }

func (c *RoleInfoCommand) UserPermissions() []int64 { return nil }

func (c *RoleInfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "The role to get information about",
				Required:    true,
			},
		},
	}
}

func (c *RoleInfoCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	role := command.RoleOption(command.OptionMap(e), "role", s, e.GuildID)
	if role == nil {
		return command.Validationf("You must specify a role.")
	}

	created, err := discordgo.SnowflakeTimestamp(role.ID)
	if err != nil {
		created = created.UTC()
	}

	color := embed.ColorInfo
	if role.Color != 0 {
		color = role.Color
	}

	holders, err := membersWithRole(s, e.GuildID, role.ID)
	if err != nil {
		return command.ExternalRejection("fetch role members", err)
	}

	b := embed.New().
		Title(fmt.Sprintf("🎭 Role Information: %s", role.Name)).
		Color(color).
		Field("📝 Basic Info", fmt.Sprintf(
			"**Name:** %s\n**ID:** `%s`\n**Position:** %d\n**Created:** <t:%d:F>",
			role.Name, role.ID, role.Position, created.Unix(),
		), true).
		Field("⚙️ Settings", fmt.Sprintf(
			"**Color:** #%06x\n**Mentionable:** %s\n**Hoisted:** %s\n**Managed:** %s",
			role.Color, yesNo(role.Mentionable), yesNo(role.Hoist), yesNo(role.Managed),
		), true).
		Field("👥 Members", fmt.Sprintf("**%d** members have this role", len(holders)), true)

	if perms := keyPermission(role.Permissions); perms != "" {
		b.Field("🔑 Key Permissions", "• "+perms, false)
	}

	if len(holders) > 0 && len(holders) <= 20 {
		var names []string
		for i, member := range holders {
			if i == 10 {
				names = append(names, fmt.Sprintf("... and %d more", len(holders)-10))
				break
			}
			names = append(names, displayName(member))
		}
		b.Field("👤 Members with this role", strings.Join(names, "\n"), false)
	} else if len(holders) > 20 {
		b.Field("👤 Members with this role", fmt.Sprintf("Too many members to list (%d total)", len(holders)), false)
	}

	b.Footer(fmt.Sprintf("Requested by %s", e.Member.User.Username), e.Member.User.AvatarURL(""))

	return bot.RespondEmbed(s, e, b.Build())
}

// keyPermission reports the single most significant permission a role grants.
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
		{discordgo.PermissionManageMessages, "Manage Messages"},
	}
	for _, check := range checks {
		if perms&check.bit != 0 {
			return check.name
		}
	}
	return ""
}

func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	return member.User.Username
}

func init() {
	command.Register(command.Apply(
		&RoleInfoCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
