package server

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

const roleListLimit = 30

type RolesCommand struct{}

func (c *RolesCommand) Name() string        { return "roles" }
func (c *RolesCommand) Description() string { return "List all roles in the server" }

func (c *RolesCommand) Group() string    { return "server" }
func (c *RolesCommand) Category() string { return "📊 Server Information" }

func (c *RolesCommand) UserPermissions() []int64 { return nil }

func (c *RolesCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *RolesCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	guild, err := fetchGuild(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("resolve the server", err)
	}

	// Highest rank first, @everyone excluded.
	roles := make([]*discordgo.Role, 0, len(guild.Roles))
	for _, role := range guild.Roles {
		if role.ID != guild.ID {
			roles = append(roles, role)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Position > roles[j].Position })

	msg := embed.New().
		Title(fmt.Sprintf("🎭 %s Roles", guild.Name)).
		Color(embed.ColorInfo)

	if len(roles) == 0 {
		msg.Description("This server has no roles beyond @everyone.")
	} else {
		var mentions []string
		for i, role := range roles {
			if i == roleListLimit {
				break
			}
			mentions = append(mentions, fmt.Sprintf("<@&%s>", role.ID))
		}
		msg.Description(embed.Truncate(strings.Join(mentions, ", "), embed.FieldValueLimit))
		if len(roles) > roleListLimit {
			msg.Footer(fmt.Sprintf("And %d more...", len(roles)-roleListLimit), "")
		}
	}

	msg.Field("📊 Total", fmt.Sprintf("%d roles", len(roles)), true)

	return bot.RespondEmbed(s, e, msg.Build())
}

func init() {
	command.Register(command.Apply(
		&RolesCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
