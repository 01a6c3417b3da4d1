package discord

import (
	"log"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

// renderError turns a command failure into an ephemeral embed. Commands that
// already deferred cannot take an initial response anymore, so a failed
// respond falls back to a followup message.
func (b *Bot) renderError(s *discordgo.Session, i *discordgo.InteractionCreate, cmdName string, err error) {
	cmdErr, ok := command.AsError(err)
	if !ok {
		log.Printf("[ERR] Command %s failed: %v", cmdName, err)
		cmdErr = &command.Error{
			Kind:    command.KindExternalRejection,
			Message: "Something went wrong while running this command.",
		}
	}

	e := errorEmbed(cmdErr)
	if respondErr := bot.RespondEmbedEphemeral(s, i, e); respondErr != nil {
		if followupErr := bot.FollowupEmbedEphemeral(s, i, e); followupErr != nil {
			log.Printf("[ERR] Failed to deliver error for %s: %v", cmdName, followupErr)
		}
	}
}

func errorEmbed(cmdErr *command.Error) *discordgo.MessageEmbed {
	title := "❌ Error"
	color := embed.ColorError
	switch cmdErr.Kind {
	case command.KindValidation:
		title = "❌ Invalid Input"
	case command.KindPermission:
		title = "🚫 Permission Denied"
	case command.KindNotFound:
		title = "❓ Not Found"
	case command.KindExternalUnavailable:
		title = "⚠️ Service Unavailable"
		color = embed.ColorWarning
	}

	return embed.New().
		Title(title).
		Description(cmdErr.Message).
		Color(color).
		Build()
}
