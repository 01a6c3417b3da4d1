package moderation

import (
	"fmt"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type KickCommand struct{}

func (c *KickCommand) Name() string        { return "kick" }
func (c *KickCommand) Description() string { return "Kick a member from the server" }

func (c *KickCommand) Group() string    { return "moderation" }
func (c *KickCommand) Category() string { return "🛡️ Moderation" }

func (c *KickCommand) UserPermissions() []int64 { return moderationPerms }

func (c *KickCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "member",
				Description: "The member to kick",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Reason for the kick",
			},
		},
	}
}

func (c *KickCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	target := command.UserOption(opts, "member", s)
	reason := command.StringOption(opts, "reason", "No reason provided")
	if target == nil {
		return command.Validationf("You must specify a member to kick.")
	}

	if err := checkHierarchy(s, e, target.ID); err != nil {
		return err
	}

	notifyTarget(s, e, target, "You have been kicked", reason, embed.ColorWarning)

	if err := s.GuildMemberDeleteWithReason(e.GuildID, target.ID, auditReason(reason, e.Member.User)); err != nil {
		return command.ExternalRejection("kick the member", err)
	}

	return bot.RespondEmbed(s, e, embed.New().
		Title("Member Kicked").
		Description(fmt.Sprintf("**%s** has been kicked from the server", target.Username)).
		Color(embed.ColorSuccess).
		Field("Reason", reason, false).
		Field("Kicked by", fmt.Sprintf("<@%s>", e.Member.User.ID), true).
		Build())
}

func init() {
	command.Register(command.Apply(
		&KickCommand{},
		command.WithCommandLogger(),
		command.WithUserPermissionCheck(),
		command.WithGuildOnly(),
	))
}
