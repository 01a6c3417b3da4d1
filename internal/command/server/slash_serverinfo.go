package server

import (
	"fmt"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

// featureLabels maps raw guild feature flags to readable names; anything not
// listed is shown with underscores replaced.
var featureLabels = map[discordgo.GuildFeature]string{
	discordgo.GuildFeatureCommunity:    "Community Server",
	discordgo.GuildFeaturePartnered:    "Discord Partner",
	discordgo.GuildFeatureVerified:     "Verified",
	discordgo.GuildFeatureVanityURL:    "Vanity URL",
	discordgo.GuildFeatureBanner:       "Server Banner",
	discordgo.GuildFeatureAnimatedIcon: "Animated Icon",
	discordgo.GuildFeatureNews:         "News Channels",
	discordgo.GuildFeatureDiscoverable: "Server Discovery",
}

var verificationLabels = map[discordgo.VerificationLevel]string{
	discordgo.VerificationLevelNone:     "None",
	discordgo.VerificationLevelLow:      "Low",
	discordgo.VerificationLevelMedium:   "Medium",
	discordgo.VerificationLevelHigh:     "High",
	discordgo.VerificationLevelVeryHigh: "Very High",
}

type ServerInfoCommand struct{}

func (c *ServerInfoCommand) Name() string        { return "serverinfo" }
func (c *ServerInfoCommand) Description() string { return "Get detailed information about the server" }

func (c *ServerInfoCommand) Group() string    { return "server" }
func (c *ServerInfoCommand) Category() string { return "📊 Server Information" }

func (c *ServerInfoCommand) UserPermissions() []int64 { return nil }

func (c *ServerInfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ServerInfoCommand) Run(ctx interface{}) error {
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

	created, _ := discordgo.SnowflakeTimestamp(guild.ID)

	textChannels, voiceChannels, categories := 0, 0, 0
	for _, ch := range channels {
		switch ch.Type {
		case discordgo.ChannelTypeGuildText:
			textChannels++
		case discordgo.ChannelTypeGuildVoice:
			voiceChannels++
		case discordgo.ChannelTypeGuildCategory:
			categories++
		}
	}

	highestRole := "@everyone"
	highestPos := -1
	for _, role := range guild.Roles {
		if role.ID != guild.ID && role.Position > highestPos {
			highestPos = role.Position
			highestRole = role.Name
		}
	}

	b := embed.New().
		Title(fmt.Sprintf("📊 %s Server Information", guild.Name)).
		Color(embed.ColorInfo).
		Field("📝 Basic Info", fmt.Sprintf(
			"**Owner:** <@%s>\n**Created:** <t:%d:F>\n**Server ID:** `%s`\n**Verification Level:** %s",
			guild.OwnerID, created.Unix(), guild.ID, verificationLabels[guild.VerificationLevel],
		), true).
		Field("👥 Members", fmt.Sprintf("**Total:** %d", guild.MemberCount), true).
		Field("📁 Channels", fmt.Sprintf(
			"**Text:** %d\n**Voice:** %d\n**Categories:** %d\n**Total:** %d",
			textChannels, voiceChannels, categories, textChannels+voiceChannels,
		), true).
		Field("🎭 Roles", fmt.Sprintf(
			"**Total:** %d\n**Highest:** %s\n**Default:** @everyone",
			len(guild.Roles), highestRole,
		), true).
		Field("💎 Nitro Boosts", fmt.Sprintf(
			"**Level:** %d\n**Boosts:** %d",
			guild.PremiumTier, guild.PremiumSubscriptionCount,
		), true).
		Field("🔒 Security", fmt.Sprintf(
			"**2FA Requirement:** %s",
			yesNo(guild.MfaLevel == discordgo.MfaLevelElevated),
		), true)

	if guild.Icon != "" {
		b.Thumbnail(guild.IconURL("256"))
	}
	if guild.Banner != "" {
		b.Image(guild.BannerURL("1024"))
	}

	if len(guild.Features) > 0 {
		var labels []string
		for i, feature := range guild.Features {
			if i == 5 {
				break
			}
			label, known := featureLabels[feature]
			if !known {
				label = titleCase(strings.ReplaceAll(string(feature), "_", " "))
			}
			labels = append(labels, "• "+label)
		}
		b.Field("✨ Features", strings.Join(labels, "\n"), false)
	}

	b.Footer(fmt.Sprintf("Requested by %s", e.Member.User.Username), e.Member.User.AvatarURL(""))

	return bot.RespondEmbed(s, e, b.Build())
}

func init() {
	command.Register(command.Apply(
		&ServerInfoCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
