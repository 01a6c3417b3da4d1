package user

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"

	"github.com/bwmarrin/discordgo"
)

type JoinPositionCommand struct{}

func (c *JoinPositionCommand) Name() string        { return "joinposition" }
func (c *JoinPositionCommand) Description() string { return "Check when you joined compared to others" }

func (c *JoinPositionCommand) Group() string    { return "user" }
func (c *JoinPositionCommand) Category() string { return "👤 User Information" }

func (c *JoinPositionCommand) UserPermissions() []int64 { return nil }

func (c *JoinPositionCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user to check (defaults to yourself)",
			},
		},
	}
}

// Run defers before fetching members; guilds past a few hundred members need
// several pages.
func (c *JoinPositionCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	target := command.UserOption(command.OptionMap(e), "user", s)
	if target == nil {
		target = e.Member.User
	}

	if err := bot.RespondDeferred(s, e); err != nil {
		return err
	}

	members, err := allMembers(s, e.GuildID)
	if err != nil {
		return command.ExternalRejection("fetch members", err)
	}

	sorted := members[:0]
	for _, member := range members {
		if !member.JoinedAt.IsZero() {
			sorted = append(sorted, member)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].JoinedAt.Before(sorted[j].JoinedAt) })

	position := -1
	for i, member := range sorted {
		if member.User.ID == target.ID {
			position = i
			break
		}
	}
	if position == -1 {
		return command.NotFoundf("Could not determine join position for that user.")
	}

	start := position - 2
	if start < 0 {
		start = 0
	}
	end := position + 3
	if end > len(sorted) {
		end = len(sorted)
	}
	var nearby []string
	for i := start; i < end; i++ {
		prefix := "  "
		if i == position {
			prefix = "**➤**"
		}
		nearby = append(nearby, fmt.Sprintf("%s %d. %s", prefix, i+1, displayName(sorted[i])))
	}

	msg := embed.New().
		Title(fmt.Sprintf("📊 %s's Join Position", target.Username)).
		Color(embed.ColorInfo).
		Thumbnail(target.AvatarURL("1024")).
		Field("🎯 Position", fmt.Sprintf("**%d** out of **%d** members", position+1, len(sorted)), true).
		Field("📅 Join Date", fmt.Sprintf("<t:%d:F>", sorted[position].JoinedAt.Unix()), true).
		Field("👥 Nearby Members", strings.Join(nearby, "\n"), false).
		Footer(fmt.Sprintf("Requested by %s", e.Member.User.Username), e.Member.User.AvatarURL("")).
		Build()

	_, err = bot.FollowupEmbed(s, e, msg)
	return err
}

func allMembers(s *discordgo.Session, guildID string) ([]*discordgo.Member, error) {
	var members []*discordgo.Member
	after := ""
	for {
		page, err := s.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, err
		}
		members = append(members, page...)
		if len(page) < 1000 {
			return members, nil
		}
		after = page[len(page)-1].User.ID
	}
}

func init() {
	command.Register(command.Apply(
		&JoinPositionCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
