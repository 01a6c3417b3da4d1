package core

import (
	"fmt"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"
	"github.com/MubtasimTazwer/utility-bot/internal/version"

	"github.com/bwmarrin/discordgo"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string        { return "about" }
func (c *AboutCommand) Description() string { return "Information about this bot" }

func (c *AboutCommand) Group() string    { return "core" }
func (c *AboutCommand) Category() string { return "ℹ️ Core" }

func (c *AboutCommand) UserPermissions() []int64 { return nil }

func (c *AboutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *AboutCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	b := embed.New().
		Title(fmt.Sprintf("🤖 About %s", version.AppName)).
		Description("A utility bot for moderation, server insights, polls, reminders and live football scores.").
		Color(embed.ColorInfo).
		Field("Version", version.Version, true).
		Field("Build Date", version.BuildDate, true).
		Field("Servers", fmt.Sprintf("%d", len(s.State.Guilds)), true).
		Field("Commands", fmt.Sprintf("%d", len(command.All())), true).
		Footer("Bot developed by Mubtasim Tazwer", "")

	return bot.RespondEmbed(s, e, b.Build())
}

func init() {
	command.Register(command.Apply(
		&AboutCommand{},
		command.WithCommandLogger(),
	))
}
