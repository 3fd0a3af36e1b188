package models

// Averages are window means of one player's per-match values.
type Averages struct {
	Kills       float64 `json:"kills"`
	Deaths      float64 `json:"deaths"`
	Assists     float64 `json:"assists"`
	KDA         float64 `json:"kda"`
	CS          float64 `json:"cs"`
	Gold        float64 `json:"gold"`
	Damage      float64 `json:"damage"`
	VisionScore float64 `json:"visionScore"`
	MVPScore    float64 `json:"mvpScore"`
	WinRate     float64 `json:"winRate"`
}

// Performance counts rank buckets across the window. TrollCount uses each
// match's own size.
type Performance struct {
	MVPCount   int `json:"mvpCount"`
	Top3Count  int `json:"top3Count"`
	TrollCount int `json:"trollCount"`
}

// PlayerHistory is one player's recent matches, most recent first, with
// the aggregates derived from them.
type PlayerHistory struct {
	Player      PlayerIdentity `json:"player"`
	Matches     []MatchResult  `json:"matches"`
	Averages    Averages       `json:"averages"`
	Performance Performance    `json:"performance"`
	TotalGames  int            `json:"totalGames"`
}
