package discord

import (
	"fmt"
	"log"

	"github.com/MubtasimTazwer/utility-bot/internal/command"

	"github.com/bwmarrin/discordgo"
)

// registerCommands overwrites a guild's slash commands with the local
// registry. Bulk overwrite is a single request and removes anything Discord
// still has that the registry no longer defines.
func (b *Bot) registerCommands(guildID string) error {
	appID, err := b.appID()
	if err != nil {
		return err
	}

	defs := buildCommandDefinitions()
	registered, err := b.dg.ApplicationCommandBulkOverwrite(appID, guildID, defs)
	if err != nil {
		return fmt.Errorf("bulk overwrite failed: %w", err)
	}

	log.Printf("[INFO] [%s] Registered %d command(s)", guildID, len(registered))
	return nil
}

// buildCommandDefinitions returns ApplicationCommand definitions for all registered commands.
func buildCommandDefinitions() []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range command.All() {
		if provider, ok := c.(command.SlashProvider); ok {
			if def := provider.SlashDefinition(); def != nil {
				defs = append(defs, def)
			}
		}
	}
	return defs
}

func (b *Bot) appID() (string, error) {
	if b.dg.State.User != nil && b.dg.State.User.ID != "" {
		return b.dg.State.User.ID, nil
	}
	user, err := b.dg.User("@me")
	if err != nil {
		return "", fmt.Errorf("failed to resolve application ID: %w", err)
	}
	return user.ID, nil
}
