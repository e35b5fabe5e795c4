package memory

import (
	"github.com/dugout-hq/dugout/internal/domain/player"
	"github.com/dugout-hq/dugout/internal/domain/team"
)

const (
	TeamIDRiverhawks = "riverhawks-2026"
	TeamIDHarborCats = "harborcats-2026"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDRiverhawks, Name: "Rockford Riverhawks", Sport: "baseball", Season: "2026"},
		{ID: TeamIDHarborCats, Name: "Bayview Harbor Cats", Sport: "baseball", Season: "2026"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "rvh-01", TeamID: TeamIDRiverhawks, Name: "Marcus Delgado", Position: "Pitcher", JerseyNumber: "21"},
		{ID: "rvh-02", TeamID: TeamIDRiverhawks, Name: "Tommy Okafor", Position: "Catcher", JerseyNumber: "7", Nickname: "Big T"},
		{ID: "rvh-03", TeamID: TeamIDRiverhawks, Name: "Jesse Calloway", Position: "First Base", JerseyNumber: "14"},
		{ID: "rvh-04", TeamID: TeamIDRiverhawks, Name: "Ray Fontaine", Position: "Shortstop", JerseyNumber: "2"},
		{ID: "rvh-05", TeamID: TeamIDRiverhawks, Name: "Devon Sharp", Position: "Third Base", JerseyNumber: "9"},
		{ID: "rvh-06", TeamID: TeamIDRiverhawks, Name: "Casey Brandt", Position: "Left Field", JerseyNumber: "33"},
		{ID: "rvh-07", TeamID: TeamIDRiverhawks, Name: "Felix Arroyo", Position: "Center Field", JerseyNumber: "18", Nickname: "Flash"},
		{ID: "rvh-08", TeamID: TeamIDRiverhawks, Name: "Owen McAllister", Position: "Right Field", JerseyNumber: "25"},
		{ID: "rvh-09", TeamID: TeamIDRiverhawks, Name: "Sam Whitaker", Position: "Second Base", JerseyNumber: "4"},
		{ID: "rvh-10", TeamID: TeamIDRiverhawks, Name: "Jordan Pell", JerseyNumber: "40"},
		{ID: "rvh-11", TeamID: TeamIDRiverhawks, Name: "Andre Kowalski", Position: "Pitcher", JerseyNumber: "51"},
		{ID: "rvh-12", TeamID: TeamIDRiverhawks, Name: "Nico Ferreira", JerseyNumber: "16"},
		{ID: "hbc-01", TeamID: TeamIDHarborCats, Name: "Logan Pruitt", Position: "Pitcher", JerseyNumber: "11"},
		{ID: "hbc-02", TeamID: TeamIDHarborCats, Name: "Ezra Solomon", Position: "Catcher", JerseyNumber: "29"},
		{ID: "hbc-03", TeamID: TeamIDHarborCats, Name: "Miles Tanaka", Position: "Shortstop", JerseyNumber: "3"},
	}
}
