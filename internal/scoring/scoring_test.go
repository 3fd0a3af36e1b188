package scoring_test

import (
	"fmt"

	"github.com/vytor/flexstats/internal/models"
)

const testMatchID = "LA2_1500000001"

func player(name string) models.PlayerIdentity {
	return models.PlayerIdentity{GameName: name, TagLine: "LAS"}
}

func participant(name string, team, kills, deaths, assists int, win bool) models.ParticipantRecord {
	return models.ParticipantRecord{
		MatchID:         testMatchID,
		Player:          player(name),
		TeamID:          team,
		Champion:        "Ahri",
		Kills:           kills,
		Deaths:          deaths,
		Assists:         assists,
		CS:              150,
		Gold:            9000,
		DamageDealt:     12000,
		DamageTaken:     15000,
		VisionScore:     15,
		Items:           []int{3089, 3020, 0, 0, 0, 0, 3340},
		Win:             win,
		DurationSeconds: 1800,
	}
}

// tenPlayerMatch returns a 10-player match where no two participants tie on score.
func tenPlayerMatch() []models.ParticipantRecord {
	out := make([]models.ParticipantRecord, 0, 10)
	for i := 0; i < 10; i++ {
		team := 100
		if i%2 == 1 {
			team = 200
		}
		p := participant(fmt.Sprintf("p%d", i), team, 10-i, i, 5, team == 100)
		p.Gold = 14000 - i*500
		p.DamageDealt = 25000 - i*1500
		out = append(out, p)
	}
	return out
}
