package moderation

import (
	"fmt"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

const maxDeleteDays = 7

func validateDeleteDays(days int64) *command.Error {
	if days < 0 || days > maxDeleteDays {
		return command.Validationf("Delete messages days must be between 0 and %d.", maxDeleteDays)
	}
	return nil
}

type BanCommand struct{}

func (c *BanCommand) Name() string        { return "ban" }
func (c *BanCommand) Description() string { return "Ban a member from the server" }

func (c *BanCommand) Group() string    { return "moderation" }
func (c *BanCommand) Category() string { return "🛡️ Moderation" }

func (c *BanCommand) UserPermissions() []int64 { return moderationPerms }

func (c *BanCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "member",
				Description: "The member to ban",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Reason for the ban",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "delete_messages",
				Description: "Days of messages to delete (0-7)",
			},
		},
	}
}

func (c *BanCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	target := command.UserOption(opts, "member", s)
	reason := command.StringOption(opts, "reason", "No reason provided")
	deleteDays := command.IntOption(opts, "delete_messages", 0)
	if target == nil {
		return command.Validationf("You must specify a member to ban.")
	}
	if err := validateDeleteDays(deleteDays); err != nil {
		return err
	}

	if err := checkHierarchy(s, e, target.ID); err != nil {
		return err
	}

	notifyTarget(s, e, target, "You have been banned", reason, embed.ColorError)

	if err := s.GuildBanCreateWithReason(e.GuildID, target.ID, auditReason(reason, e.Member.User), int(deleteDays)); err != nil {
		return command.ExternalRejection("ban the member", err)
	}

	return bot.RespondEmbed(s, e, embed.New().
		Title("Member Banned").
		Description(fmt.Sprintf("**%s** has been banned from the server", target.Username)).
		Color(embed.ColorError).
		Field("Reason", reason, false).
		Field("Banned by", fmt.Sprintf("<@%s>", e.Member.User.ID), true).
		Field("Messages deleted", fmt.Sprintf("%d days", deleteDays), true).
		Build())
}

func init() {
	command.Register(command.Apply(
		&BanCommand{},
		command.WithCommandLogger(),
		command.WithUserPermissionCheck(),
		command.WithGuildOnly(),
	))
}
