package utilities

import (
	"fmt"
	"log"
	"time"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"
	"github.com/MubtasimTazwer/utility-bot/internal/reminders"

	"github.com/bwmarrin/discordgo"
)

type RemindCommand struct{}

func (c *RemindCommand) Name() string        { return "remind" }
func (c *RemindCommand) Description() string { return "Set a reminder" }

func (c *RemindCommand) Group() string    { return "utilities" }
func (c *RemindCommand) Category() string { return "🔧 Utilities" }

func (c *RemindCommand) UserPermissions() []int64 { return nil }

func (c *RemindCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "time",
				Description: "Time in minutes",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Reminder message",
			},
		},
	}
}

// Run outlives the interaction: the confirmation goes out immediately and the
// reminder itself is delivered by the scheduler when the timer fires, as long
// as the record still exists then.
func (c *RemindCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	minutes := command.IntOption(opts, "time", 0)
	message := command.StringOption(opts, "message", "No message provided")

	maxMinutes := slash.Deps.Cfg.MaxReminderMin
	if minutes < 1 || minutes > int64(maxMinutes) {
		return command.Validationf("Time must be between 1 minute and %d minutes.", maxMinutes)
	}

	now := time.Now().UTC()
	fireAt := now.Add(time.Duration(minutes) * time.Minute)

	if err := bot.RespondEmbed(s, e, embed.New().
		Title("⏰ Reminder Set").
		Description(fmt.Sprintf("I'll remind you in **%d minutes**", minutes)).
		Color(embed.ColorSuccess).
		Field("Message", message, false).
		Field("Reminder Time", fmt.Sprintf("<t:%d:F>", fireAt.Unix()), false).
		Build()); err != nil {
		return err
	}

	slash.Deps.Reminders.Schedule(reminders.Record{
		ID:        reminders.NewID(e.Member.User.ID, now),
		UserID:    e.Member.User.ID,
		ChannelID: e.ChannelID,
		Message:   message,
		FireAt:    fireAt,
	}, func(rec reminders.Record) {
		deliverReminder(s, rec)
	})
	return nil
}

// deliverReminder posts the reminder to its original channel. Delivery is
// best effort and never retried.
func deliverReminder(s *discordgo.Session, rec reminders.Record) {
	msg := embed.New().
		Title("⏰ Reminder").
		Description("You asked me to remind you:").
		Color(embed.ColorWarning).
		Field("Message", rec.Message, false).
		Build()

	_, err := s.ChannelMessageSendComplex(rec.ChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>", rec.UserID),
		Embed:   msg,
	})
	if err != nil {
		log.Printf("[WARN] Failed to deliver reminder %s: %v", rec.ID, err)
	}
}

func init() {
	command.Register(command.Apply(
		&RemindCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
