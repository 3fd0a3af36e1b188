package riot

// MatchResponse is the body of /lol/match/v5/matches/{matchId}.
type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata identifies the match and its participants by PUUID.
type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

// MatchInfo carries the game details and per-participant stats.
type MatchInfo struct {
	GameCreation     int64              `json:"gameCreation"`
	GameDuration     int64              `json:"gameDuration"`
	GameEndTimestamp int64              `json:"gameEndTimestamp"`
	GameMode         string             `json:"gameMode"`
	GameVersion      string             `json:"gameVersion"`
	QueueID          int                `json:"queueId"`
	Participants     []MatchParticipant `json:"participants"`
}

// MatchParticipant is one player's end-of-game stats.
type MatchParticipant struct {
	ParticipantID               int    `json:"participantId"`
	PUUID                       string `json:"puuid"`
	RiotIdGameName              string `json:"riotIdGameName"`
	RiotIdTagline               string `json:"riotIdTagline"`
	SummonerName                string `json:"summonerName"`
	TeamID                      int    `json:"teamId"`
	ChampionName                string `json:"championName"`
	TeamPosition                string `json:"teamPosition"` // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	GoldEarned                  int    `json:"goldEarned"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int    `json:"totalDamageTaken"`
	VisionScore                 int    `json:"visionScore"`
	TimePlayed                  int    `json:"timePlayed"`
	Win                         bool   `json:"win"`
	Item0                       int    `json:"item0"`
	Item1                       int    `json:"item1"`
	Item2                       int    `json:"item2"`
	Item3                       int    `json:"item3"`
	Item4                       int    `json:"item4"`
	Item5                       int    `json:"item5"`
	Item6                       int    `json:"item6"` // Trinket
}
