// Package embed builds consistently styled message embeds. Every command
// reply goes through here so colors, timestamps, and Discord's length
// limits are applied in one place.
package embed

import (
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// Embed colors matching the bot's palette.
const (
	ColorSuccess = 0x00ff00
	ColorError   = 0xff0000
	ColorWarning = 0xffff00
	ColorInfo    = 0x0099ff
	ColorDefault = 0x7289da
)

// FieldValueLimit is Discord's hard cap on an embed field value. Sending a
// longer value makes the API reject the whole message, so Field truncates.
const FieldValueLimit = 1024

// Builder assembles a *discordgo.MessageEmbed.
type Builder struct {
	e *discordgo.MessageEmbed
}

// New returns a Builder with the default color and the current timestamp.
func New() *Builder {
	return &Builder{e: &discordgo.MessageEmbed{
		Color:     ColorDefault,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}}
}

func (b *Builder) Title(title string) *Builder {
	b.e.Title = title
	return b
}

func (b *Builder) Description(desc string) *Builder {
	b.e.Description = desc
	return b
}

func (b *Builder) Color(color int) *Builder {
	b.e.Color = color
	return b
}

// Field appends a field, truncating the value to Discord's limit.
func (b *Builder) Field(name, value string, inline bool) *Builder {
	b.e.Fields = append(b.e.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  Truncate(value, FieldValueLimit),
		Inline: inline,
	})
	return b
}

func (b *Builder) Footer(text, iconURL string) *Builder {
	b.e.Footer = &discordgo.MessageEmbedFooter{Text: text, IconURL: iconURL}
	return b
}

func (b *Builder) Thumbnail(url string) *Builder {
	if url != "" {
		b.e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}
	return b
}

func (b *Builder) Image(url string) *Builder {
	if url != "" {
		b.e.Image = &discordgo.MessageEmbedImage{URL: url}
	}
	return b
}

func (b *Builder) Build() *discordgo.MessageEmbed {
	return b.e
}

// Truncate shortens text to at most max bytes, marking the cut with "...".
// The cut always lands on a rune boundary so the result stays valid UTF-8.
// Values at or under the limit pass through unchanged.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	if cut > 3 {
		cut -= 3
	}
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	if max <= 3 {
		return text[:cut]
	}
	return text[:cut] + "..."
}
