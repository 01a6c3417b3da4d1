package server

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type ChannelsCommand struct{}

func (c *ChannelsCommand) Name() string        { return "channels" }
func (c *ChannelsCommand) Description() string { return "List all channels in the server" }

func (c *ChannelsCommand) Group() string    { return "server" }
func (c *ChannelsCommand) Category() string { return "📊 Server Information" }

func (c *ChannelsCommand) UserPermissions() []int64 { return nil }

func (c *ChannelsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ChannelsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	guild, err := fetchGuild(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("resolve the server", err)
	}
	channels, err := fetchChannels(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("fetch channels", err)
	}

	type bucket struct {
		name  string
		pos   int
		text  []*discordgo.Channel
		voice []*discordgo.Channel
	}
	buckets := map[string]*bucket{}
	uncategorized := &bucket{name: "No Category", pos: -1}

	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory {
			if _, exists := buckets[ch.ID]; !exists {
				buckets[ch.ID] = &bucket{name: ch.Name, pos: ch.Position}
			} else {
				buckets[ch.ID].name = ch.Name
				buckets[ch.ID].pos = ch.Position
			}
		}
	}
	totalText, totalVoice, totalCategories := 0, 0, 0
	for _, ch := range channels {
		target := uncategorized
		if ch.ParentID != "" {
			if parent, exists := buckets[ch.ParentID]; exists {
				target = parent
			}
		}
		switch ch.Type {
		case discordgo.ChannelTypeGuildText:
			target.text = append(target.text, ch)
			totalText++
		case discordgo.ChannelTypeGuildVoice:
			target.voice = append(target.voice, ch)
			totalVoice++
		case discordgo.ChannelTypeGuildCategory:
			totalCategories++
		}
	}

	ordered := make([]*bucket, 0, len(buckets)+1)
	if len(uncategorized.text)+len(uncategorized.voice) > 0 {
		ordered = append(ordered, uncategorized)
	}
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].pos < ordered[j].pos })

	msg := embed.New().
		Title(fmt.Sprintf("📁 %s Channels", guild.Name)).
		Color(embed.ColorInfo)

	for _, b := range ordered {
		var lines []string
		for i, ch := range b.text {
			if i == 5 {
				lines = append(lines, fmt.Sprintf("... and %d more text channels", len(b.text)-5))
				break
			}
			lines = append(lines, "💬 "+ch.Name)
		}
		for i, ch := range b.voice {
			if i == 3 {
				lines = append(lines, fmt.Sprintf("... and %d more voice channels", len(b.voice)-3))
				break
			}
			lines = append(lines, "🔊 "+ch.Name)
		}
		if len(lines) > 0 {
			msg.Field("📂 "+b.name, strings.Join(lines, "\n"), false)
		}
	}

	msg.Field("📊 Summary", fmt.Sprintf(
		"**Text Channels:** %d\n**Voice Channels:** %d\n**Categories:** %d",
		totalText, totalVoice, totalCategories,
	), true)
	msg.Footer(fmt.Sprintf("Requested by %s", e.Member.User.Username), e.Member.User.AvatarURL(""))

	return bot.RespondEmbed(s, e, msg.Build())
}

func init() {
	command.Register(command.Apply(
		&ChannelsCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
