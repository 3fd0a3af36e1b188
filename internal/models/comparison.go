package models

// ComparisonKey selects the average a squad comparison orders by.
type ComparisonKey string

const (
	KeyMVPScore    ComparisonKey = "mvp_score"
	KeyWinRate     ComparisonKey = "win_rate"
	KeyKDA         ComparisonKey = "kda"
	KeyDamage      ComparisonKey = "damage"
	KeyGold        ComparisonKey = "gold"
	KeyVisionScore ComparisonKey = "vision_score"
)

// Value extracts the key's average from a.
func (k ComparisonKey) Value(a Averages) (float64, bool) {
	switch k {
	case KeyMVPScore, "":
		return a.MVPScore, true
	case KeyWinRate:
		return a.WinRate, true
	case KeyKDA:
		return a.KDA, true
	case KeyDamage:
		return a.Damage, true
	case KeyGold:
		return a.Gold, true
	case KeyVisionScore:
		return a.VisionScore, true
	}
	return 0, false
}

// ComparisonResult orders 1 to 5 player histories by Key, best first.
type ComparisonResult struct {
	Players         []PlayerHistory `json:"players"`
	ComparedPlayers int             `json:"comparedPlayers"`
	Key             ComparisonKey   `json:"key"`
}
