package utilities

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/bot"
	"github.com/MubtasimTazwer/utility-bot/internal/command"
	"github.com/MubtasimTazwer/utility-bot/internal/embed"
	"github.com/MubtasimTazwer/utility-bot/internal/football"
	"github.com/MubtasimTazwer/utility-bot/internal/scores"

	"github.com/bwmarrin/discordgo"
)

type FootballCommand struct{}

func (c *FootballCommand) Name() string        { return "football" }
func (c *FootballCommand) Description() string { return "Get live football scores" }

func (c *FootballCommand) Group() string    { return "utilities" }
func (c *FootballCommand) Category() string { return "🔧 Utilities" }

func (c *FootballCommand) UserPermissions() []int64 { return nil }

func (c *FootballCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "match",
				Description: "Search for a specific team or match (e.g. 'Arsenal', 'Real Madrid vs Barcelona')",
			},
		},
	}
}

// Run defers, fetches live fixtures, and attaches a drill-down session to
// the followup message.
func (c *FootballCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e := slash.Session, slash.Event

	query := strings.TrimSpace(command.StringOption(command.OptionMap(e), "match", ""))

	if err := bot.RespondDeferred(s, e); err != nil {
		return err
	}

	fixtures, err := slash.Deps.Football.LiveFixtures(context.Background())
	if err != nil {
		return command.ExternalUnavailable("Live scores")
	}

	if query != "" {
		var filtered []football.Fixture
		for _, fixture := range fixtures {
			if fixture.MatchesSearch(query) {
				filtered = append(filtered, fixture)
			}
		}
		fixtures = filtered
		if len(fixtures) == 0 {
			msg := embed.New().
				Title(fmt.Sprintf("⚽ No matches found for '%s'", query)).
				Description("No live matches found for the specified team or match.").
				Color(embed.ColorWarning).
				Field("💡 Try These Examples",
					"• `/football match: Arsenal`\n"+
						"• `/football match: Real Madrid`\n"+
						"• `/football match: Barcelona`\n"+
						"• `/football` (for all live matches)",
					false).
				Build()
			_, err := bot.FollowupEmbed(s, e, msg)
			return err
		}
	}

	if len(fixtures) == 0 {
		msg := embed.New().
			Title("⚽ No live matches at the moment").
			Description("There are currently no live football matches.").
			Color(embed.ColorWarning).
			Build()
		_, err := bot.FollowupEmbed(s, e, msg)
		return err
	}

	if len(fixtures) > scores.MaxMatches {
		fixtures = fixtures[:scores.MaxMatches]
	}

	posted, err := s.FollowupMessageCreate(e.Interaction, false, &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{listEmbed(fixtures, query)},
		Components: listComponents(fixtures),
	})
	if err != nil {
		return err
	}

	slash.Deps.Scores.Create(posted.ID, fixtures)
	return nil
}

// Component handles the drill-down buttons. Expired or unknown sessions are
// acknowledged and otherwise ignored.
func (c *FootballCommand) Component(ctx *command.ComponentContext) error {
	s, e := ctx.Session, ctx.Event
	customID := e.MessageComponentData().CustomID
	messageID := e.Message.ID

	action, ok := parseFootballAction(customID)
	if !ok {
		return bot.RespondDeferredUpdate(s, e)
	}

	session, err := ctx.Deps.Scores.Transition(messageID, action)
	if err != nil {
		if errors.Is(err, scores.ErrExpired) || errors.Is(err, scores.ErrNoSession) || errors.Is(err, scores.ErrBadTransition) {
			return bot.RespondDeferredUpdate(s, e)
		}
		return err
	}

	if session.View == scores.LineupView {
		return c.showLineups(ctx, session)
	}

	msg, components := renderView(session)
	return bot.UpdateMessage(s, e, msg, components)
}

// showLineups acknowledges first: the lineup fetch is a network call and the
// component interaction deadline is short.
func (c *FootballCommand) showLineups(ctx *command.ComponentContext, session *scores.Session) error {
	s, e := ctx.Session, ctx.Event

	if err := bot.RespondDeferredUpdate(s, e); err != nil {
		return err
	}

	match := session.Selected()
	lineups, err := ctx.Deps.Football.Lineups(context.Background(), match.Meta.ID)

	var msg *discordgo.MessageEmbed
	switch {
	case err != nil:
		msg = lineupPlaceholderEmbed(true)
	case len(lineups) < 2:
		msg = lineupPlaceholderEmbed(false)
	default:
		msg = lineupEmbed(match, lineups)
	}

	_, err = bot.EditResponseEmbedComponents(s, e, msg, backComponents())
	return err
}

func parseFootballAction(customID string) (scores.Action, bool) {
	switch {
	case customID == footballLineupsID:
		return scores.Action{Kind: scores.ShowLineup}, true
	case customID == footballBackID:
		return scores.Action{Kind: scores.Back}, true
	case strings.HasPrefix(customID, footballMatchPrefix):
		index, err := strconv.Atoi(strings.TrimPrefix(customID, footballMatchPrefix))
		if err != nil {
			return scores.Action{}, false
		}
		return scores.Action{Kind: scores.SelectMatch, Index: index}, true
	}
	return scores.Action{}, false
}

func init() {
	command.Register(command.Apply(
		&FootballCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	))
}
