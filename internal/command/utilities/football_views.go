package utilities

import (
	"fmt"
	"strings"

	"github.com/MubtasimTazwer/utility-bot/internal/embed"
	"github.com/MubtasimTazwer/utility-bot/internal/football"
	"github.com/MubtasimTazwer/utility-bot/internal/scores"

	"github.com/bwmarrin/discordgo"
)

// Component custom IDs. The dispatcher routes by the "football" prefix.
const (
	footballMatchPrefix = "football_match_"
	footballLineupsID   = "football_lineups"
	footballBackID      = "football_back"
)

func matchLabel(f football.Fixture) string {
	return fmt.Sprintf("%s %d-%d %s", f.Teams.Home.Name, f.HomeGoals(), f.AwayGoals(), f.Teams.Away.Name)
}

// listEmbed renders the match list, one field per live fixture.
func listEmbed(matches []football.Fixture, query string) *discordgo.MessageEmbed {
	b := embed.New().Color(embed.ColorSuccess)
	if query != "" {
		b.Title(fmt.Sprintf("📺 Live Scores: %s", query)).
			Description(fmt.Sprintf("Matches found for '%s'", query))
	} else {
		b.Title("📺 Live Football Scores").
			Description("Current live matches from around the world")
	}

	for i, match := range matches {
		text := fmt.Sprintf("**%s %d - %d %s**\n*League: %s*\n🕐 %d'",
			match.Teams.Home.Name, match.HomeGoals(), match.AwayGoals(), match.Teams.Away.Name,
			match.League.Name, match.Elapsed())
		b.Field(fmt.Sprintf("⚽ Match %d", i+1), text, true)
	}
	if len(matches) > 0 {
		b.Field("📊 Want More Details?", "Click the buttons below to see detailed match information!", false)
	}
	return b.Build()
}

// listComponents builds one button per match.
func listComponents(matches []football.Fixture) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	for i, match := range matches {
		buttons = append(buttons, discordgo.Button{
			Label:    embed.Truncate(matchLabel(match), 80),
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("%s%d", footballMatchPrefix, i),
			Emoji:    &discordgo.ComponentEmoji{Name: "⚽"},
		})
	}
	if len(buttons) == 0 {
		return nil
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func detailEmbed(match football.Fixture) *discordgo.MessageEmbed {
	b := embed.New().
		Title(fmt.Sprintf("⚽ %s vs %s", match.Teams.Home.Name, match.Teams.Away.Name)).
		Description(fmt.Sprintf("**Live Score: %d - %d**", match.HomeGoals(), match.AwayGoals())).
		Color(embed.ColorSuccess).
		Field("🏆 Competition", fmt.Sprintf("%s\n🌍 %s", match.League.Name, match.League.Country), true).
		Field("🕐 Match Time", fmt.Sprintf("%d' (Live)", match.Elapsed()), true).
		Field("🏟️ Venue", fmt.Sprintf("%s\n📍 %s", match.Meta.Venue.Name, match.Meta.Venue.City), true).
		Field(fmt.Sprintf("🏠 %s", match.Teams.Home.Name), fmt.Sprintf("⚽ Goals: %d\n🎯 Playing at home", match.HomeGoals()), true).
		Field(fmt.Sprintf("✈️ %s", match.Teams.Away.Name), fmt.Sprintf("⚽ Goals: %d\n🎯 Playing away", match.AwayGoals()), true)

	if match.Meta.Referee != "" {
		b.Field("👨‍⚖️ Referee", match.Meta.Referee, true)
	}
	if match.Meta.Status.Long != "" {
		b.Field("📊 Match Status", match.Meta.Status.Long, false)
	}
	b.Footer("Data from API-Football • Click buttons below for more info", "")
	return b.Build()
}

func detailComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Show Playing XI",
			Style:    discordgo.SuccessButton,
			CustomID: footballLineupsID,
			Emoji:    &discordgo.ComponentEmoji{Name: "👥"},
		},
		discordgo.Button{
			Label:    "Back to Matches",
			Style:    discordgo.SecondaryButton,
			CustomID: footballBackID,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔙"},
		},
	}}}
}

func lineupEmbed(match football.Fixture, lineups []football.TeamLineup) *discordgo.MessageEmbed {
	b := embed.New().
		Title("👥 Starting Lineups").
		Description(fmt.Sprintf("**%s vs %s**", match.Teams.Home.Name, match.Teams.Away.Name)).
		Color(embed.ColorSuccess)

	icons := []string{"🏠", "✈️"}
	var coaches []string
	for i, lineup := range lineups {
		if i == 2 {
			break
		}
		var players []string
		for j, slot := range lineup.StartXI {
			if j == 11 {
				break
			}
			number := "?"
			if slot.Player.Number != 0 {
				number = fmt.Sprintf("%d", slot.Player.Number)
			}
			position := slot.Player.Position
			if position == "" {
				position = "Unknown"
			}
			players = append(players, fmt.Sprintf("%s. %s (%s)", number, slot.Player.Name, position))
		}
		if len(players) > 0 {
			formation := lineup.Formation
			if formation == "" {
				formation = "Unknown"
			}
			b.Field(
				fmt.Sprintf("%s %s (%s)", icons[i], lineup.Team.Name, formation),
				strings.Join(players, "\n"),
				true,
			)
		}
		if lineup.Coach.Name != "" {
			coaches = append(coaches, fmt.Sprintf("%s Coach: %s", icons[i], lineup.Coach.Name))
		}
	}

	if len(coaches) > 0 {
		b.Field("👨‍💼 Coaches", strings.Join(coaches, "\n"), false)
	}
	b.Footer("Data from API-Football • Playing XI and formations", "")
	return b.Build()
}

// lineupPlaceholderEmbed is rendered when lineup data cannot be shown; the
// back button stays live so the user is never stranded.
func lineupPlaceholderEmbed(unavailable bool) *discordgo.MessageEmbed {
	if unavailable {
		return embed.New().
			Title("❌ Lineup Information Unavailable").
			Description("Unable to fetch lineup data at this time.").
			Color(embed.ColorError).
			Build()
	}
	return embed.New().
		Title("📋 Lineups Not Available").
		Description("Starting lineups haven't been announced yet or are not available for this match.").
		Color(embed.ColorWarning).
		Build()
}

func backComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Back to Match Details",
			Style:    discordgo.SecondaryButton,
			CustomID: footballBackID,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔙"},
		},
	}}}
}

// renderView maps a session state to the embed and components for it. The
// lineup view is rendered separately since it needs fetched data.
func renderView(session *scores.Session) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	if session.View == scores.DetailView {
		return detailEmbed(session.Selected()), detailComponents()
	}
	return listEmbed(session.Matches, ""), listComponents(session.Matches)
}
