// Package utilities implements polls, reminders, timestamps, weather links,
// and the live football scores drill-down.
package utilities

import (
	"fmt"
	"log"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"
	"github.com/MubtasimTazwer/utility-bot/internal/polls"

	"github.com/bwmarrin/discordgo"
)

type PollCommand struct{}

func (c *PollCommand) Name() string        { return "poll" }
func (c *PollCommand) Description() string { return "Create a poll with multiple options" }

func (c *PollCommand) Group() string    { return "utilities" }
func (c *PollCommand) Category() string { return "🔧 Utilities" }

func (c *PollCommand) UserPermissions() []int64 { return nil }

func (c *PollCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "question",
				Description: "The poll question",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "options",
				Description: "Poll options separated by commas (max 10)",
				Required:    true,
			},
		},
	}
}

func (c *PollCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	question := command.StringOption(opts, "question", "")
	rawOptions := command.StringOption(opts, "options", "")

	var optionList []string
	for _, opt := range strings.Split(rawOptions, ",") {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			optionList = append(optionList, trimmed)
		}
	}
	if len(optionList) < polls.MinOptions {
		return command.Validationf("You need at least %d options for a poll.", polls.MinOptions)
	}
	if len(optionList) > polls.MaxOptions {
		return command.Validationf("Maximum %d options allowed.", polls.MaxOptions)
	}

	var optionsText strings.Builder
	for i, option := range optionList {
		fmt.Fprintf(&optionsText, "%s %s\n", polls.NumberEmojis[i], option)
	}

	msg := embed.New().
		Title("📊 Poll").
		Description(fmt.Sprintf("**%s**", question)).
		Color(embed.ColorInfo).
		Field("Options", optionsText.String(), false).
		Field("Instructions", "React with the corresponding emoji to vote!", false).
		Footer(fmt.Sprintf("Poll created by %s", e.Member.User.Username), e.Member.User.AvatarURL("")).
		Build()

	if err := bot.RespondEmbed(s, e, msg); err != nil {
		return err
	}
	posted, err := s.InteractionResponse(e.Interaction)
	if err != nil {
		return command.ExternalRejection("fetch the poll message", err)
	}

	// Seed one reaction per option so voters can click instead of typing.
	for i := range optionList {
		if err := s.MessageReactionAdd(posted.ChannelID, posted.ID, polls.NumberEmojis[i]); err != nil {
			log.Printf("[WARN] Failed to seed poll reaction %s: %v", polls.NumberEmojis[i], err)
		}
	}

	slash.Deps.Polls.Put(polls.Record{
		MessageID: posted.ID,
		ChannelID: posted.ChannelID,
		CreatorID: e.Member.User.ID,
		Question:  question,
		Options:   optionList,
	})
	return nil
}

func init() {
	command.Register(command.Apply(
		&PollCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
