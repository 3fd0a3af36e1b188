package models

import "time"

// EmptyItemSlot marks an unused inventory slot.
const EmptyItemSlot = 0

// ParticipantRecord is one player's raw stats in one match.
type ParticipantRecord struct {
	MatchID         string         `json:"matchId"`
	Player          PlayerIdentity `json:"player"`
	TeamID          int            `json:"teamId"`
	Champion        string         `json:"champion"`
	Role            string         `json:"role,omitempty"`
	Kills           int            `json:"kills"`
	Deaths          int            `json:"deaths"`
	Assists         int            `json:"assists"`
	CS              int            `json:"cs"`
	Gold            int            `json:"gold"`
	DamageDealt     int            `json:"damage"`
	DamageTaken     int            `json:"damageTaken"`
	VisionScore     int            `json:"visionScore"`
	Items           []int          `json:"items"`
	Win             bool           `json:"win"`
	DurationSeconds int            `json:"gameDuration"`
	PlayedAt        time.Time      `json:"gameCreation"`
	GameMode        string         `json:"gameMode,omitempty"`
	QueueID         int            `json:"queueId,omitempty"`
}

// DerivedMetrics are computed from a ParticipantRecord and its team's kill total.
// Ratios carry 2 decimal places; KillParticipation is an integer percent.
type DerivedMetrics struct {
	KDA               float64 `json:"kda"`
	GoldPerMinute     float64 `json:"goldPerMinute"`
	DamagePerMinute   float64 `json:"damagePerMinute"`
	KillParticipation int     `json:"killParticipation"`
}

// ScoredParticipant is a ranked participant. Rank 1 is best.
type ScoredParticipant struct {
	ParticipantRecord
	Metrics  DerivedMetrics `json:"metrics"`
	MVPScore float64        `json:"mvpScore"`
	Rank     int            `json:"ranking"`
	Bucket   Bucket         `json:"bucket"`
}

// Bucket is the qualitative label for a rank within a match.
type Bucket string

const (
	BucketMVP   Bucket = "MVP"
	BucketGreat Bucket = "Great"
	BucketGood  Bucket = "Good"
	BucketOK    Bucket = "OK"
	BucketMeh   Bucket = "Meh"
	BucketBad   Bucket = "Bad"
	BucketTroll Bucket = "Troll"
)
