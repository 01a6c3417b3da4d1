// Package discord owns the gateway session: connecting, registering slash
// commands and routing interactions to the command registry.
package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/config"

	"github.com/bwmarrin/discordgo"
)

// Bot is a Discord bot
type Bot struct {
	dg   *discordgo.Session
	cfg  *config.Config
	deps *command.Deps
}

// StartBot connects to Discord and blocks until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config, deps *command.Deps) error {
	b := &Bot{cfg: cfg, deps: deps}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onGuildDelete)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s#%s (%d guilds)",
		r.User.Username, r.User.Discriminator, len(r.Guilds))

	if b.cfg.InitSlashCommands {
		for _, g := range r.Guilds {
			if err := b.registerCommands(g.ID); err != nil {
				log.Printf("[ERR] [%s] Failed to register commands: %v", g.ID, err)
			}
		}
	}

	b.updatePresence(s)
}

// onGuildCreate is called when the bot joins a guild or a guild becomes available
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.Unavailable {
		return
	}
	log.Printf("[INFO] Guild available: %s (%s)", g.Name, g.ID)

	if b.cfg.InitSlashCommands {
		if err := b.registerCommands(g.ID); err != nil {
			log.Printf("[ERR] [%s] Failed to register commands: %v", g.ID, err)
		}
	}

	b.updatePresence(s)
}

func (b *Bot) onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		return
	}
	log.Printf("[INFO] Removed from guild: %s", g.ID)
	b.updatePresence(s)
}

func (b *Bot) updatePresence(s *discordgo.Session) {
	status := fmt.Sprintf("%d servers | /help", len(s.State.Guilds))
	if err := s.UpdateWatchStatus(0, status); err != nil {
		log.Printf("[WARN] Failed to update presence: %v", err)
	}
}

// onInteractionCreate routes slash commands and component clicks to the
// registered command that owns them.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		cmdName := i.ApplicationCommandData().Name

		cmd, ok := command.Get(cmdName)
		if !ok {
			log.Printf("[WARN] Unknown command: %s", cmdName)
			return
		}

		ctx := &command.SlashContext{
			Session: s,
			Event:   i,
			Deps:    b.deps,
		}
		if err := cmd.Run(ctx); err != nil {
			b.renderError(s, i, cmdName, err)
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID

		var matched command.Command
		for _, cmd := range command.All() {
			if customID == cmd.Name() ||
				strings.HasPrefix(customID, cmd.Name()+":") ||
				strings.HasPrefix(customID, cmd.Name()+"_") {
				matched = cmd
				break
			}
		}
		if matched == nil {
			log.Printf("[WARN] No matching command for customID: %s", customID)
			return
		}

		handler, ok := matched.(command.ComponentHandler)
		if !ok {
			log.Printf("[WARN] Command %s has components but no component handler", matched.Name())
			return
		}

		ctx := &command.ComponentContext{
			Session: s,
			Event:   i,
			Deps:    b.deps,
		}
		if err := handler.Component(ctx); err != nil {
			b.renderError(s, i, matched.Name(), err)
		}
	}
}
