package roles

import (
	"fmt"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type RemoveRoleCommand struct{}

func (c *RemoveRoleCommand) Name() string        { return "removerole" }
func (c *RemoveRoleCommand) Description() string { return "Remove a role from a user" }

func (c *RemoveRoleCommand) Group() string    { return "roles" }
func (c *RemoveRoleCommand) Category() string { return "🎭 Role Management" }

func (c *RemoveRoleCommand) UserPermissions() []int64 { return roleManagementPerms }

func (c *RemoveRoleCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user to remove the role from",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "The role to remove",
				Required:    true,
			},
		},
	}
}

func (c *RemoveRoleCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	user := command.UserOption(opts, "user", s)
	role := command.RoleOption(opts, "role", s, e.GuildID)
	if user == nil || role == nil {
		return command.Validationf("You must specify both a user and a role.")
	}

	if err := checkManageable(s, e, role); err != nil {
		return err
	}

	member, err := s.GuildMember(e.GuildID, user.ID)
	if err != nil {
		return command.NotFoundf("That member is not in this server.")
	}
	hasRole := false
	for _, id := range member.Roles {
		if id == role.ID {
			hasRole = true
			break
		}
	}
	if !hasRole {
		return command.Validationf("<@%s> doesn't have the <@&%s> role.", user.ID, role.ID)
	}

	if err := s.GuildMemberRoleRemove(e.GuildID, user.ID, role.ID); err != nil {
		return command.ExternalRejection("remove the role", err)
	}

	return bot.RespondEmbed(s, e, embed.New().
		Title("✅ Role Removed").
		Description(fmt.Sprintf("Successfully removed <@&%s> from <@%s>", role.ID, user.ID)).
		Color(embed.ColorSuccess).
		Field("Removed by", fmt.Sprintf("<@%s>", e.Member.User.ID), true).
		Field("Role", fmt.Sprintf("<@&%s>", role.ID), true).
		Build())
}

func init() {
	command.Register(command.Apply(
		&RemoveRoleCommand{},
		command.WithCommandLogger(),
		command.WithUserPermissionCheck(),
		command.WithGuildOnly(),
	))
}
