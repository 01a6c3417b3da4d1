package utilities

import (
	"fmt"
	"time"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

const timestampLayout = "2006-01-02 15:04"

type TimestampCommand struct{}

func (c *TimestampCommand) Name() string        { return "timestamp" }
func (c *TimestampCommand) Description() string { return "Generate Discord timestamps" }

func (c *TimestampCommand) Group() string    { return "utilities" }
func (c *TimestampCommand) Category() string { return "🔧 Utilities" }

func (c *TimestampCommand) UserPermissions() []int64 { return nil }

func (c *TimestampCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "Time in format: YYYY-MM-DD HH:MM (24h format)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "style",
				Description: "Timestamp style",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Short Time (16:20)", Value: "t"},
					{Name: "Long Time (4:20:30 PM)", Value: "T"},
					{Name: "Short Date (20/04/2021)", Value: "d"},
					{Name: "Long Date (20 April 2021)", Value: "D"},
					{Name: "Short Date/Time (20 April 2021 16:20)", Value: "f"},
					{Name: "Long Date/Time (Tuesday, 20 April 2021 16:20)", Value: "F"},
					{Name: "Relative Time (2 months ago)", Value: "R"},
				},
			},
		},
	}
}

func (c *TimestampCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	input := command.StringOption(opts, "time", "")
	style := command.StringOption(opts, "style", "f")

	parsed, err := time.Parse(timestampLayout, input)
	if err != nil {
		return command.Validationf("Invalid time format. Please use `YYYY-MM-DD HH:MM` format.\nExample: `2024-12-25 14:30`")
	}
	ts := parsed.Unix()

	allFormats := fmt.Sprintf(
		"**Short Time:** <t:%[1]d:t> `<t:%[1]d:t>`\n"+
			"**Long Time:** <t:%[1]d:T> `<t:%[1]d:T>`\n"+
			"**Short Date:** <t:%[1]d:d> `<t:%[1]d:d>`\n"+
			"**Long Date:** <t:%[1]d:D> `<t:%[1]d:D>`\n"+
			"**Short Date/Time:** <t:%[1]d:f> `<t:%[1]d:f>`\n"+
			"**Long Date/Time:** <t:%[1]d:F> `<t:%[1]d:F>`\n"+
			"**Relative:** <t:%[1]d:R> `<t:%[1]d:R>`",
		ts,
	)

	return bot.RespondEmbed(s, e, embed.New().
		Title("🕐 Discord Timestamp").
		Color(embed.ColorInfo).
		Field("Input", fmt.Sprintf("**%s**", input), true).
		Field("Timestamp Code", fmt.Sprintf("`<t:%d:%s>`", ts, style), true).
		Field("Preview", fmt.Sprintf("<t:%d:%s>", ts, style), false).
		Field("All Formats", allFormats, false).
		Build())
}

func init() {
	command.Register(command.Apply(
		&TimestampCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
