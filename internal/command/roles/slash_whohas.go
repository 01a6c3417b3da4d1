package roles

import (
	"fmt"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

const whohasListLimit = 25

type WhoHasCommand struct{}

func (c *WhoHasCommand) Name() string        { return "whohas" }
func (c *WhoHasCommand) Description() string { return "See who has a specific role" }

func (c *WhoHasCommand) Group() string    { return "roles" }
func (c *WhoHasCommand) Category() string { return "🎭 Role Management" }

func (c *WhoHasCommand) UserPermissions() []int64 { return nil }

func (c *WhoHasCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "The role to check",
				Required:    true,
			},
		},
	}
}

func (c *WhoHasCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	role := command.RoleOption(command.OptionMap(e), "role", s, e.GuildID)
	if role == nil {
		return command.Validationf("You must specify a role.")
	}

	holders, err := membersWithRole(s, e.GuildID, role.ID)
	if err != nil {
		return command.ExternalRejection("fetch role members", err)
	}

	if len(holders) == 0 {
		return bot.RespondEmbed(s, e, embed.New().
			Title(fmt.Sprintf("👥 Members with %s", role.Name)).
			Description("No members have this role.").
			Color(embed.ColorInfo).
			Build())
	}

	color := embed.ColorInfo
	if role.Color != 0 {
		color = role.Color
	}

	var mentions []string
	for i, member := range holders {
		if i == whohasListLimit {
			break
		}
		mentions = append(mentions, fmt.Sprintf("<@%s>", member.User.ID))
	}

	b := embed.New().
		Title(fmt.Sprintf("👥 Members with %s", role.Name)).
		Description(strings.Join(mentions, "\n")).
		Color(color)
	if len(holders) > whohasListLimit {
		b.Footer(fmt.Sprintf("And %d more...", len(holders)-whohasListLimit), "")
	}

	return bot.RespondEmbed(s, e, b.Build())
}

func init() {
	command.Register(command.Apply(
		&WhoHasCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
