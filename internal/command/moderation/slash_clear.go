package moderation

import (
	"fmt"
	"log"
	"time"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

const maxClearAmount = 100

// confirmationTTL is how long the "messages cleared" notice stays up.
const confirmationTTL = 5 * time.Second

func validateClearAmount(amount int64) *command.Error {
	if amount < 1 || amount > maxClearAmount {
		return command.Validationf("Amount must be between 1 and %d.", maxClearAmount)
	}
	return nil
}

type ClearCommand struct{}

func (c *ClearCommand) Name() string        { return "clear" }
func (c *ClearCommand) Description() string { return "Clear a specified number of messages" }

func (c *ClearCommand) Group() string    { return "moderation" }
func (c *ClearCommand) Category() string { return "🛡️ Moderation" }

func (c *ClearCommand) UserPermissions() []int64 {
	return []int64{discordgo.PermissionManageMessages}
}

func (c *ClearCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Number of messages to delete (1-100)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Only delete messages from this user",
			},
		},
	}
}

// Run acknowledges first and works through a followup: bulk deletion can
// easily blow past the interaction response deadline.
func (c *ClearCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	amount := command.IntOption(opts, "amount", 0)
	user := command.UserOption(opts, "user", s)
	if err := validateClearAmount(amount); err != nil {
		return err
	}

	if err := bot.RespondDeferred(s, e); err != nil {
		return err
	}

	messages, err := s.ChannelMessages(e.ChannelID, int(amount), "", "", "")
	if err != nil {
		return command.ExternalRejection("fetch messages", err)
	}

	var ids []string
	for _, msg := range messages {
		if user != nil && msg.Author.ID != user.ID {
			continue
		}
		ids = append(ids, msg.ID)
	}

	switch len(ids) {
	case 0:
	case 1:
		err = s.ChannelMessageDelete(e.ChannelID, ids[0])
	default:
		err = s.ChannelMessagesBulkDelete(e.ChannelID, ids)
	}
	if err != nil {
		return command.ExternalRejection("delete messages", err)
	}

	b := embed.New().
		Title("Messages Cleared").
		Description(fmt.Sprintf("Successfully deleted %d messages", len(ids))).
		Color(embed.ColorSuccess)
	if user != nil {
		b.Field("Target User", fmt.Sprintf("<@%s>", user.ID), true)
	}
	b.Field("Cleared by", fmt.Sprintf("<@%s>", e.Member.User.ID), true)

	confirmation, err := bot.FollowupEmbed(s, e, b.Build())
	if err != nil {
		return err
	}

	// The confirmation cleans itself up so the channel stays as empty as the
	// moderator asked for.
	time.AfterFunc(confirmationTTL, func() {
		if err := s.ChannelMessageDelete(e.ChannelID, confirmation.ID); err != nil {
			log.Printf("[WARN] Failed to remove clear confirmation: %v", err)
		}
	})
	return nil
}

func init() {
	command.Register(command.Apply(
		&ClearCommand{},
		command.WithCommandLogger(),
		command.WithUserPermissionCheck(),
		command.WithGuildOnly(),
	))
}
