package roles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

const maxRoleNameLength = 100

type CreateRoleCommand struct{}

func (c *CreateRoleCommand) Name() string        { return "createrole" }
func (c *CreateRoleCommand) Description() string { return "Create a new role" }

func (c *CreateRoleCommand) Group() string    { return "roles" }
func (c *CreateRoleCommand) Category() string { return "🎭 Role Management" }

func (c *CreateRoleCommand) UserPermissions() []int64 { return roleManagementPerms }

func (c *CreateRoleCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "The name of the role",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "color",
				Description: "The color of the role (hex format, e.g., #ff0000)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "mentionable",
				Description: "Whether the role should be mentionable",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "hoisted",
				Description: "Whether the role should be displayed separately",
			},
		},
	}
}

func (c *CreateRoleCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	name := command.StringOption(opts, "name", "")
	colorInput := command.StringOption(opts, "color", "")
	mentionable := command.BoolOption(opts, "mentionable", false)
	hoisted := command.BoolOption(opts, "hoisted", false)

	if name == "" {
		return command.Validationf("You must provide a role name.")
	}
	if len(name) > maxRoleNameLength {
		return command.Validationf("Role name cannot exceed %d characters.", maxRoleNameLength)
	}

	guild, err := fetchGuild(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("resolve the server", err)
	}
	for _, existing := range guild.Roles {
		if existing.Name == name {
			return command.Validationf("A role with the name '%s' already exists.", name)
		}
	}

	color, cmdErr := parseHexColor(colorInput)
	if cmdErr != nil {
		return cmdErr
	}

	role, err := s.GuildRoleCreate(e.GuildID, &discordgo.RoleParams{
		Name:        name,
		Color:       &color,
		Mentionable: &mentionable,
		Hoist:       &hoisted,
	})
	if err != nil {
		return command.ExternalRejection("create the role", err)
	}

	colorLabel := "Default"
	embedColor := embed.ColorSuccess
	if color != 0 {
		colorLabel = fmt.Sprintf("#%06x", color)
		embedColor = color
	}

	return bot.RespondEmbed(s, e, embed.New().
		Title("✅ Role Created").
		Description(fmt.Sprintf("Successfully created role <@&%s>", role.ID)).
		Color(embedColor).
		Field("Name", name, true).
		Field("Color", colorLabel, true).
		Field("Mentionable", yesNo(mentionable), true).
		Field("Hoisted", yesNo(hoisted), true).
		Field("Created by", fmt.Sprintf("<@%s>", e.Member.User.ID), true).
		Field("Role ID", fmt.Sprintf("`%s`", role.ID), true).
		Build())
}

// parseHexColor accepts "#ff0000" or "ff0000". Empty input means the default
// role color.
func parseHexColor(input string) (int, *command.Error) {
	if input == "" {
		return 0, nil
	}
	trimmed := strings.TrimPrefix(input, "#")
	value, err := strconv.ParseInt(trimmed, 16, 32)
	if err != nil || value < 0 || value > 0xffffff {
		return 0, command.Validationf("Invalid color format. Use hex format like #ff0000 or ff0000.")
	}
	return int(value), nil
}

func init() {
	command.Register(command.Apply(
		&CreateRoleCommand{},
		command.WithCommandLogger(),
		command.WithUserPermissionCheck(),
		command.WithGuildOnly(),
	))
}
