package football

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const liveFixturesBody = `{
  "response": [
    {
      "fixture": {
        "id": 101,
        "referee": "A. Taylor",
        "venue": {"name": "Emirates Stadium", "city": "London"},
        "status": {"long": "Second Half", "elapsed": 67}
      },
      "league": {"name": "Premier League", "country": "England"},
      "teams": {"home": {"id": 1, "name": "Arsenal"}, "away": {"id": 2, "name": "Chelsea"}},
      "goals": {"home": 2, "away": 1}
    },
    {
      "fixture": {
        "id": 102,
        "referee": "",
        "venue": {"name": "Camp Nou", "city": "Barcelona"},
        "status": {"long": "Halftime", "elapsed": null}
      },
      "league": {"name": "La Liga", "country": "Spain"},
      "teams": {"home": {"id": 3, "name": "Barcelona"}, "away": {"id": 4, "name": "Sevilla"}},
      "goals": {"home": null, "away": null}
    }
  ]
}`

const lineupsBody = `{
  "response": [
    {
      "team": {"id": 1, "name": "Arsenal"},
      "formation": "4-3-3",
      "coach": {"name": "M. Arteta"},
      "startXI": [
        {"player": {"name": "Raya", "number": 22, "pos": "G"}},
        {"player": {"name": "Saka", "number": 7, "pos": "F"}}
      ]
    },
    {
      "team": {"id": 2, "name": "Chelsea"},
      "formation": "4-2-3-1",
      "coach": {"name": "E. Maresca"},
      "startXI": [
        {"player": {"name": "Sanchez", "number": 1, "pos": "G"}}
      ]
    }
  ]
}`

func TestLiveFixtures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("live"))
		assert.Equal(t, "test-key", r.Header.Get("x-apisports-key"))
		w.Write([]byte(liveFixturesBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	fixtures, err := c.LiveFixtures(context.Background())
	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	first := fixtures[0]
	assert.Equal(t, 101, first.Meta.ID)
	assert.Equal(t, "Arsenal", first.Teams.Home.Name)
	assert.Equal(t, 2, first.HomeGoals())
	assert.Equal(t, 1, first.AwayGoals())
	assert.Equal(t, 67, first.Elapsed())
	assert.Equal(t, "Premier League", first.League.Name)

	// Null score and elapsed degrade to zero.
	second := fixtures[1]
	assert.Equal(t, 0, second.HomeGoals())
	assert.Equal(t, 0, second.Elapsed())
}

func TestLineups(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures/lineups", r.URL.Path)
		assert.Equal(t, "101", r.URL.Query().Get("fixture"))
		w.Write([]byte(lineupsBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	lineups, err := c.Lineups(context.Background(), 101)
	require.NoError(t, err)
	require.Len(t, lineups, 2)

	assert.Equal(t, "4-3-3", lineups[0].Formation)
	assert.Equal(t, "M. Arteta", lineups[0].Coach.Name)
	require.Len(t, lineups[0].StartXI, 2)
	assert.Equal(t, "Saka", lineups[0].StartXI[1].Player.Name)
	assert.Equal(t, 7, lineups[0].StartXI[1].Player.Number)
}

func TestNon200IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	_, err := c.LiveFixtures(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMatchesSearch(t *testing.T) {
	f := Fixture{Teams: Teams{
		Home: Team{Name: "Real Madrid"},
		Away: Team{Name: "Barcelona"},
	}}

	assert.True(t, f.MatchesSearch("madrid"))
	assert.True(t, f.MatchesSearch("Barcelona"))
	assert.True(t, f.MatchesSearch("real sociedad")) // term "real" matches
	assert.False(t, f.MatchesSearch("arsenal"))
}
