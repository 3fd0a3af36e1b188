package testutil

import (
	"fmt"
	"time"

	"github.com/vytor/flexstats/internal/models"
)

// Player returns name#LAS.
func Player(name string) models.PlayerIdentity {
	return models.PlayerIdentity{GameName: name, TagLine: "LAS"}
}

// Match builds a match with one participant per player. The first half is
// team 100 and wins. Everyone has full kill participation and every other
// stat falls off with slot, so ranks follow the order of players.
func Match(matchID string, playedAt time.Time, players ...models.PlayerIdentity) []models.ParticipantRecord {
	n := len(players)
	teamOf := func(i int) int {
		if i >= (n+1)/2 {
			return 200
		}
		return 100
	}
	teamKills := map[int]int{}
	for i := range players {
		teamKills[teamOf(i)] += 2 * (n - i)
	}

	out := make([]models.ParticipantRecord, n)
	for i, p := range players {
		team := teamOf(i)
		out[i] = models.ParticipantRecord{
			MatchID:         matchID,
			Player:          p,
			TeamID:          team,
			Champion:        "Ahri",
			Role:            "MIDDLE",
			Kills:           2 * (n - i),
			Deaths:          1 + i,
			Assists:         teamKills[team] - 2*(n-i),
			CS:              150 + 10*(n-i),
			Gold:            9000 + 500*(n-i),
			DamageDealt:     15000 + 1000*(n-i),
			DamageTaken:     14000,
			VisionScore:     20,
			Items:           []int{3089, 3020, 0, 0, 0, 0, 3340},
			Win:             team == 100,
			DurationSeconds: 1800,
			PlayedAt:        playedAt,
			GameMode:        "CLASSIC",
			QueueID:         440,
		}
	}
	return out
}

// Lobby returns the given players padded with fillers up to n.
func Lobby(n int, players ...models.PlayerIdentity) []models.PlayerIdentity {
	out := append([]models.PlayerIdentity(nil), players...)
	for i := len(out); i < n; i++ {
		out = append(out, Player(fmt.Sprintf("filler%d", i)))
	}
	return out
}
