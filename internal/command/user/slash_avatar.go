package user

import (
	"fmt"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type AvatarCommand struct{}

func (c *AvatarCommand) Name() string        { return "avatar" }
func (c *AvatarCommand) Description() string { return "Get a user's avatar" }

func (c *AvatarCommand) Group() string    { return "user" }
func (c *AvatarCommand) Category() string { return "👤 User Information" }

func (c *AvatarCommand) UserPermissions() []int64 { return nil }

func (c *AvatarCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user to get the avatar of (defaults to yourself)",
			},
		},
	}
}

func (c *AvatarCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	target := command.UserOption(command.OptionMap(e), "user", s)
	if target == nil {
		target = e.Member.User
	}

	avatarURL := target.AvatarURL("1024")
	links := []string{
		fmt.Sprintf("[PNG](%s)", withExtension(avatarURL, "png")),
		fmt.Sprintf("[JPG](%s)", withExtension(avatarURL, "jpg")),
		fmt.Sprintf("[WEBP](%s)", withExtension(avatarURL, "webp")),
	}
	if strings.HasPrefix(target.Avatar, "a_") {
		links = append([]string{fmt.Sprintf("[GIF](%s)", withExtension(avatarURL, "gif"))}, links...)
	}

	return bot.RespondEmbed(s, e, embed.New().
		Title(fmt.Sprintf("🖼️ %s's Avatar", target.Username)).
		Color(embed.ColorInfo).
		Image(avatarURL).
		Field("📥 Download Links", strings.Join(links, " • "), false).
		Footer(fmt.Sprintf("Requested by %s", e.Member.User.Username), e.Member.User.AvatarURL("")).
		Build())
}

// withExtension swaps the file extension in a CDN avatar URL, keeping any
// query string.
func withExtension(url, ext string) string {
	base, query, hasQuery := strings.Cut(url, "?")
	if dot := strings.LastIndex(base, "."); dot != -1 {
		base = base[:dot]
	}
	result := base + "." + ext
	if hasQuery {
		result += "?" + query
	}
	return result
}

func init() {
	command.Register(command.Apply(
		&AvatarCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
