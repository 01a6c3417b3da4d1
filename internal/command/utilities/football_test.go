package utilities

import (
	"testing"

	"github.com/MubtasimTazwer/utility-bot/internal/football"
	"github.com/MubtasimTazwer/utility-bot/internal/scores"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFootballAction(t *testing.T) {
	tests := []struct {
		customID string
		want     scores.Action
		ok       bool
	}{
		{"football_match_0", scores.Action{Kind: scores.SelectMatch, Index: 0}, true},
		{"football_match_4", scores.Action{Kind: scores.SelectMatch, Index: 4}, true},
		{"football_lineups", scores.Action{Kind: scores.ShowLineup}, true},
		{"football_back", scores.Action{Kind: scores.Back}, true},
		{"football_match_abc", scores.Action{}, false},
		{"football_unknown", scores.Action{}, false},
		{"poll_option_1", scores.Action{}, false},
	}

	for _, tt := range tests {
		got, ok := parseFootballAction(tt.customID)
		assert.Equal(t, tt.ok, ok, tt.customID)
		assert.Equal(t, tt.want, got, tt.customID)
	}
}

func testFixture(home, away string, homeGoals, awayGoals int) football.Fixture {
	var fx football.Fixture
	fx.Teams.Home.Name = home
	fx.Teams.Away.Name = away
	fx.Goals.Home = &homeGoals
	fx.Goals.Away = &awayGoals
	return fx
}

func TestMatchLabel(t *testing.T) {
	fx := testFixture("Arsenal", "Chelsea", 2, 1)
	assert.Equal(t, "Arsenal 2-1 Chelsea", matchLabel(fx))
}

func TestListComponentsOneButtonPerMatch(t *testing.T) {
	matches := []football.Fixture{
		testFixture("Arsenal", "Chelsea", 1, 0),
		testFixture("Milan", "Inter", 0, 0),
		testFixture("Barcelona", "Sevilla", 3, 2),
	}

	components := listComponents(matches)
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3)

	first, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, "football_match_0", first.CustomID)
	assert.Equal(t, "Arsenal 1-0 Chelsea", first.Label)
}

func TestListComponentsEmpty(t *testing.T) {
	assert.Nil(t, listComponents(nil))
}
