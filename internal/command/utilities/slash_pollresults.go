package utilities

import (
	"fmt"
	"strconv"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"
	"github.com/MubtasimTazwer/utility-bot/internal/polls"

	"github.com/bwmarrin/discordgo"
)

type PollResultsCommand struct{}

func (c *PollResultsCommand) Name() string        { return "pollresults" }
func (c *PollResultsCommand) Description() string { return "Get results of a poll" }

func (c *PollResultsCommand) Group() string    { return "utilities" }
func (c *PollResultsCommand) Category() string { return "🔧 Utilities" }

func (c *PollResultsCommand) UserPermissions() []int64 { return nil }

func (c *PollResultsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message_id",
				Description: "The ID of the poll message",
				Required:    true,
			},
		},
	}
}

// Run counts votes from the live reactions on the poll message, not from any
// local tally; the store only remembers which message is a poll.
func (c *PollResultsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	messageID := command.StringOption(command.OptionMap(e), "message_id", "")
	if _, err := strconv.ParseUint(messageID, 10, 64); err != nil {
		return command.Validationf("Invalid message ID.")
	}

	record, found := slash.Deps.Polls.Get(messageID)
	if !found {
		return command.NotFoundf("Poll not found or not created by this bot.")
	}

	message, err := s.ChannelMessage(record.ChannelID, messageID)
	if err != nil {
		return command.NotFoundf("Poll message not found.")
	}

	// One count slot per option; minus one discounts the seed reaction.
	counts := make([]int, len(record.Options))
	for i := range record.Options {
		for _, reaction := range message.Reactions {
			if reaction.Emoji.Name == polls.NumberEmojis[i] {
				counts[i] = reaction.Count - 1
				break
			}
		}
	}

	results, total := polls.Tally(record.Options, counts)

	b := embed.New().
		Title("📊 Poll Results").
		Description(fmt.Sprintf("**%s**", record.Question)).
		Color(embed.ColorSuccess).
		Field("Results", polls.FormatResults(results, total), false).
		Field("Total Votes", strconv.Itoa(total), true)

	if creator, err := s.User(record.CreatorID); err == nil {
		b.Footer(fmt.Sprintf("Poll created by %s", creator.Username), "")
	}

	return bot.RespondEmbed(s, e, b.Build())
}

func init() {
	command.Register(command.Apply(
		&PollResultsCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
