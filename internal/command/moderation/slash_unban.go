package moderation

import (
	"fmt"
	"strconv"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type UnbanCommand struct{}

func (c *UnbanCommand) Name() string        { return "unban" }
func (c *UnbanCommand) Description() string { return "Unban a user from the server" }

func (c *UnbanCommand) Group() string    { return "moderation" }
func (c *UnbanCommand) Category() string { return "🛡️ Moderation" }

func (c *UnbanCommand) UserPermissions() []int64 { return moderationPerms }

func (c *UnbanCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "user_id",
				Description: "The ID of the user to unban",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Reason for the unban",
			},
		},
	}
}

func (c *UnbanCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	opts := command.OptionMap(e)
	userID := command.StringOption(opts, "user_id", "")
	reason := command.StringOption(opts, "reason", "No reason provided")

	if _, err := strconv.ParseUint(userID, 10, 64); err != nil {
		return command.Validationf("Invalid user ID provided.")
	}

	user, err := s.User(userID)
	if err != nil {
		return command.NotFoundf("User not found.")
	}

	if err := s.GuildBanDelete(e.GuildID, userID); err != nil {
		return command.NotFoundf("User not found or not banned.")
	}

	return bot.RespondEmbed(s, e, embed.New().
		Title("Member Unbanned").
		Description(fmt.Sprintf("**%s** has been unbanned from the server", user.Username)).
		Color(embed.ColorSuccess).
		Field("Reason", reason, false).
		Field("Unbanned by", fmt.Sprintf("<@%s>", e.Member.User.ID), true).
		Build())
}

func init() {
	command.Register(command.Apply(
		&UnbanCommand{},
		command.WithCommandLogger(),
		command.WithUserPermissionCheck(),
		command.WithGuildOnly(),
	))
}
