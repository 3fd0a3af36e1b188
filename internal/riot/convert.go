// Package riot decodes Riot match-v5 payloads into participant records.
package riot

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/models"
)

// DecodeMatch reads one match-v5 document.
func DecodeMatch(r io.Reader) (MatchResponse, error) {
	var m MatchResponse
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return MatchResponse{}, errors.NewInputError("match", fmt.Sprintf("malformed match-v5 JSON: %v", err))
	}
	if strings.TrimSpace(m.Metadata.MatchID) == "" {
		return MatchResponse{}, errors.NewInputError("match", "metadata.matchId is missing")
	}
	return m, nil
}

// DurationSeconds returns the game length in seconds. Matches played before
// patch 11.20 have no gameEndTimestamp and report gameDuration in milliseconds.
func (i MatchInfo) DurationSeconds() int {
	if i.GameEndTimestamp == 0 {
		return int(i.GameDuration / 1000)
	}
	return int(i.GameDuration)
}

// PlayedAt converts gameCreation (epoch milliseconds) to UTC.
func (i MatchInfo) PlayedAt() time.Time {
	return time.UnixMilli(i.GameCreation).UTC()
}

// Identity is the participant's Riot ID, falling back to the legacy
// summoner name when the Riot ID is absent.
func (p MatchParticipant) Identity() models.PlayerIdentity {
	name := strings.TrimSpace(p.RiotIdGameName)
	if name == "" {
		name = strings.TrimSpace(p.SummonerName)
	}
	return models.PlayerIdentity{GameName: name, TagLine: strings.TrimSpace(p.RiotIdTagline)}
}

// Items returns the six inventory slots followed by the trinket.
func (p MatchParticipant) Items() []int {
	return []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// ParticipantRecords converts every participant, in payload order.
func (m MatchResponse) ParticipantRecords() ([]models.ParticipantRecord, error) {
	if len(m.Info.Participants) == 0 {
		return nil, errors.NewInputError("match", fmt.Sprintf("match %s has no participants", m.Metadata.MatchID))
	}
	duration := m.Info.DurationSeconds()
	if duration <= 0 {
		return nil, errors.NewInputError("match", fmt.Sprintf("match %s has no duration", m.Metadata.MatchID))
	}
	playedAt := m.Info.PlayedAt()

	records := make([]models.ParticipantRecord, len(m.Info.Participants))
	for i, p := range m.Info.Participants {
		records[i] = models.ParticipantRecord{
			MatchID:         m.Metadata.MatchID,
			Player:          p.Identity(),
			TeamID:          p.TeamID,
			Champion:        p.ChampionName,
			Role:            p.TeamPosition,
			Kills:           p.Kills,
			Deaths:          p.Deaths,
			Assists:         p.Assists,
			CS:              p.TotalMinionsKilled + p.NeutralMinionsKilled,
			Gold:            p.GoldEarned,
			DamageDealt:     p.TotalDamageDealtToChampions,
			DamageTaken:     p.TotalDamageTaken,
			VisionScore:     p.VisionScore,
			Items:           p.Items(),
			Win:             p.Win,
			DurationSeconds: duration,
			PlayedAt:        playedAt,
			GameMode:        m.Info.GameMode,
			QueueID:         m.Info.QueueID,
		}
	}
	return records, nil
}
