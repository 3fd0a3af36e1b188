package models

import "time"

// MatchMeta is the per-match data shared by every participant.
type MatchMeta struct {
	DurationSeconds int       `json:"gameDuration"`
	PlayedAt        time.Time `json:"gameCreation"`
	GameMode        string    `json:"gameMode,omitempty"`
	QueueID         int       `json:"queueId,omitempty"`
}

// MatchResult holds every participant of one match ordered by rank.
// Requested, when set, points at the participant the caller asked about.
type MatchResult struct {
	MatchID      string              `json:"matchId"`
	Meta         MatchMeta           `json:"meta"`
	Participants []ScoredParticipant `json:"players"`
	Requested    *ScoredParticipant  `json:"requestedPlayer,omitempty"`
}

func (m MatchResult) Size() int { return len(m.Participants) }

// MaxRank is the worst rank in the match, which equals its participant count.
func (m MatchResult) MaxRank() int { return len(m.Participants) }

// Find returns the participant matching player.
func (m MatchResult) Find(player PlayerIdentity) (*ScoredParticipant, bool) {
	for i := range m.Participants {
		if m.Participants[i].Player.Equal(player) {
			return &m.Participants[i], true
		}
	}
	return nil, false
}

// WithRequested returns a copy of m whose Requested points at player.
// ok is false when the player did not take part.
func (m MatchResult) WithRequested(player PlayerIdentity) (MatchResult, bool) {
	p, ok := m.Find(player)
	if !ok {
		return m, false
	}
	m.Requested = p
	return m, true
}

// Team returns the participants of one team in rank order.
func (m MatchResult) Team(teamID int) []ScoredParticipant {
	var out []ScoredParticipant
	for _, p := range m.Participants {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}
