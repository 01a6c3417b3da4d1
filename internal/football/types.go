package football

import "strings"

// Fixture is one live match as delivered by /fixtures?live=all. Scores and
// elapsed time are pointers because the API sends null before kickoff.
type Fixture struct {
	Meta   FixtureMeta `json:"fixture"`
	League League      `json:"league"`
	Teams  Teams       `json:"teams"`
	Goals  Goals       `json:"goals"`
}

type FixtureMeta struct {
	ID      int     `json:"id"`
	Referee string  `json:"referee"`
	Venue   Venue   `json:"venue"`
	Status  Status  `json:"status"`
}

type Venue struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type Status struct {
	Long    string `json:"long"`
	Elapsed *int   `json:"elapsed"`
}

type League struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Teams struct {
	Home Team `json:"home"`
	Away Team `json:"away"`
}

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// HomeGoals returns the home score, treating null as 0.
func (f Fixture) HomeGoals() int { return deref(f.Goals.Home) }

// AwayGoals returns the away score, treating null as 0.
func (f Fixture) AwayGoals() int { return deref(f.Goals.Away) }

// Elapsed returns the in-play minute, 0 when the API has not reported one.
func (f Fixture) Elapsed() int { return deref(f.Meta.Status.Elapsed) }

// MatchesSearch reports whether any whitespace-separated term appears in
// either team name, case-insensitively.
func (f Fixture) MatchesSearch(query string) bool {
	home := strings.ToLower(f.Teams.Home.Name)
	away := strings.ToLower(f.Teams.Away.Name)
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(home, term) || strings.Contains(away, term) {
			return true
		}
	}
	return false
}

// TeamLineup is one side's announced lineup from /fixtures/lineups.
type TeamLineup struct {
	Team      Team           `json:"team"`
	Formation string         `json:"formation"`
	Coach     Coach          `json:"coach"`
	StartXI   []LineupPlayer `json:"startXI"`
}

type Coach struct {
	Name string `json:"name"`
}

type LineupPlayer struct {
	Player Player `json:"player"`
}

type Player struct {
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"pos"`
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
