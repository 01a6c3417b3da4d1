package roles

import (
	"fmt"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type AddRoleCommand struct{}

func (c *AddRoleCommand) Name() string        { return "addrole" }
func (c *AddRoleCommand) Description() string { return "Add a role to a user" }

func (c *AddRoleCommand) Group() string    { return "roles" }
func (c *AddRoleCommand) Category() string { return "🎭 Role Management" }

func (c *AddRoleCommand) UserPermissions() []int64 { return roleManagementPerms }

func (c *AddRoleCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user to add the role to",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "The role to add",
				Required:    true,
			},
		},
	}
}

func (c *AddRoleCommand) Run(ctx interface{}) error {
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
	for _, id := range member.Roles {
		if id == role.ID {
			return command.Validationf("<@%s> already has the <@&%s> role.", user.ID, role.ID)
		}
	}

	if err := s.GuildMemberRoleAdd(e.GuildID, user.ID, role.ID); err != nil {
		return command.ExternalRejection("add the role", err)
	}

	return bot.RespondEmbed(s, e, embed.New().
		Title("✅ Role Added").
		Description(fmt.Sprintf("Successfully added <@&%s> to <@%s>", role.ID, user.ID)).
		Color(embed.ColorSuccess).
		Field("Added by", fmt.Sprintf("<@%s>", e.Member.User.ID), true).
		Field("Role", fmt.Sprintf("<@&%s>", role.ID), true).
		Build())
}

func init() {
	command.Register(command.Apply(
		&AddRoleCommand{},
		command.WithCommandLogger(),
		command.WithUserPermissionCheck(),
		command.WithGuildOnly(),
	))
}
