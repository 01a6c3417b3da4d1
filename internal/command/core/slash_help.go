// Package core implements the informational commands: help and about.
package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"
	"github.com/MubtasimTazwer/utility-bot/internal/version"

	"github.com/bwmarrin/discordgo"
)

// categoryOrder pins the help layout; categories not listed sort after, by
// name.
var categoryOrder = []string{
	"🛡️ Moderation",
	"📊 Server Information",
	"👤 User Information",
	"🔧 Utilities",
	"🎭 Role Management",
	"ℹ️ Core",
}

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get help with bot commands" }

func (c *HelpCommand) Group() string    { return "core" }
func (c *HelpCommand) Category() string { return "ℹ️ Core" }

func (c *HelpCommand) UserPermissions() []int64 { return nil }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	byCategory := map[string][]string{}
	for _, cmd := range command.All() {
		line := fmt.Sprintf("• `/%s` - %s", cmd.Name(), cmd.Description())
		byCategory[cmd.Category()] = append(byCategory[cmd.Category()], line)
	}

	rank := make(map[string]int, len(categoryOrder))
	for i, category := range categoryOrder {
		rank[category] = i
	}
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		ri, iKnown := rank[categories[i]]
		rj, jKnown := rank[categories[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return categories[i] < categories[j]
		}
	})

	b := embed.New().
		Title(fmt.Sprintf("🤖 %s - Help", version.AppName)).
		Description("Here are all the available commands:").
		Color(embed.ColorInfo)

	for _, category := range categories {
		lines := byCategory[category]
		sort.Strings(lines)
		b.Field(category, strings.Join(lines, "\n"), true)
	}

	b.Field("ℹ️ Information",
		"• Bot uses slash commands (`/`)\n"+
			"• Some commands require permissions\n"+
			"• Interactive views expire after 5 minutes",
		false)
	b.Footer(fmt.Sprintf("Requested by %s", e.Member.User.Username), e.Member.User.AvatarURL(""))

	return bot.RespondEmbed(s, e, b.Build())
}

func init() {
	command.Register(command.Apply(
		&HelpCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
