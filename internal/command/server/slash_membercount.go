package server

import (
	"fmt"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type MemberCountCommand struct{}

func (c *MemberCountCommand) Name() string        { return "membercount" }
func (c *MemberCountCommand) Description() string { return "Get the current member count" }

func (c *MemberCountCommand) Group() string    { return "server" }
func (c *MemberCountCommand) Category() string { return "📊 Server Information" }

func (c *MemberCountCommand) UserPermissions() []int64 { return nil }

func (c *MemberCountCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

// Run defers before counting: paging through a large member list can take a
// few seconds.
func (c *MemberCountCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	guild, err := fetchGuild(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("resolve the server", err)
	}

	if err := bot.RespondDeferred(s, e); err != nil {
		return err
	}

	humans, bots, err := countMembers(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("fetch members", err)
	}

	msg := embed.New().
		Title(fmt.Sprintf("👥 %s Member Count", guild.Name)).
		Description(fmt.Sprintf("**Total Members:** %d", humans+bots)).
		Color(embed.ColorInfo).
		Field("📊 Breakdown", fmt.Sprintf("**Humans:** %d\n**Bots:** %d", humans, bots), true).
		Footer(fmt.Sprintf("Requested by %s", e.Member.User.Username), e.Member.User.AvatarURL("")).
		Build()

	_, err = bot.FollowupEmbed(s, e, msg)
	return err
}

func init() {
	command.Register(command.Apply(
		&MemberCountCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
