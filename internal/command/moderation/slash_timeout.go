package moderation

import (
	"fmt"
	"time"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

// Discord caps timeouts at 28 days.
const maxTimeoutMinutes = 40320

func validateTimeoutDuration(minutes int64) *command.Error {
	if minutes < 1 || minutes > maxTimeoutMinutes {
		return command.Validationf("Duration must be between 1 minute and 28 days (%d minutes).", maxTimeoutMinutes)
	}
	return nil
}

type TimeoutCommand struct{}

func (c *TimeoutCommand) Name() string        { return "timeout" }
func (c *TimeoutCommand) Description() string { return "Timeout a member" }

func (c *TimeoutCommand) Group() string    { return "moderation" }
func (c *TimeoutCommand) Category() string { return "🛡️ Moderation" }

func (c *TimeoutCommand) UserPermissions() []int64 { return moderationPerms }

func (c *TimeoutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "member",
				Description: "The member to timeout",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "duration",
				Description: "Duration in minutes",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Reason for the timeout",
			},
		},
	}
}

func (c *TimeoutCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	target := command.UserOption(opts, "member", s)
	duration := command.IntOption(opts, "duration", 0)
	reason := command.StringOption(opts, "reason", "No reason provided")
	if target == nil {
		return command.Validationf("You must specify a member to timeout.")
	}
	if err := validateTimeoutDuration(duration); err != nil {
		return err
	}

	if err := checkHierarchy(s, e, target.ID); err != nil {
		return err
	}

	until := time.Now().UTC().Add(time.Duration(duration) * time.Minute)
	if err := s.GuildMemberTimeout(e.GuildID, target.ID, &until); err != nil {
		return command.ExternalRejection("timeout the member", err)
	}

	return bot.RespondEmbed(s, e, embed.New().
		Title("Member Timed Out").
		Description(fmt.Sprintf("**%s** has been timed out", target.Username)).
		Color(embed.ColorWarning).
		Field("Duration", fmt.Sprintf("%d minutes", duration), true).
		Field("Until", fmt.Sprintf("<t:%d:F>", until.Unix()), true).
		Field("Reason", reason, false).
		Field("Timed out by", fmt.Sprintf("<@%s>", e.Member.User.ID), true).
		Build())
}

func init() {
	command.Register(command.Apply(
		&TimeoutCommand{},
		command.WithCommandLogger(),
		command.WithUserPermissionCheck(),
		command.WithGuildOnly(),
	))
}
