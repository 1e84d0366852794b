package domain

// Rarity grades how hard an achievement is to unlock
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is a milestone derived from the session log. It is never persisted.
type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Rarity      Rarity `json:"rarity"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
	Unlocked    bool   `json:"unlocked"`
}

// Percent returns progress toward the target, capped at 100
func (a Achievement) Percent() int {
	if a.Target <= 0 {
		return 100
	}
	p := a.Progress * 100 / a.Target
	return min(100, max(0, p))
}
