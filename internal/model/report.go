package model

import "fmt"

// Tier is the coarse strength label derived from the score.
type Tier int

const (
	TierVeryWeak Tier = iota
	TierWeak
	TierModerate
	TierStrong
)

var tierNames = map[Tier]string{
	TierVeryWeak: "Very Weak",
	TierWeak:     "Weak",
	TierModerate: "Moderate",
	TierStrong:   "Strong",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// MarshalJSON renders the tier as its display label so API payloads
// carry "Very Weak" rather than an enum ordinal.
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// TierForScore maps a 0-6 score onto a tier. Scores only reach this
// mapping for passwords that passed the empty/common short-circuits,
// so the very-weak tier is never produced here.
func TierForScore(score int) Tier {
	switch {
	case score <= 2:
		return TierWeak
	case score <= 4:
		return TierModerate
	default:
		return TierStrong
	}
}

// Checks records which composition requirements a password meets.
type Checks struct {
	Length    bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Special   bool `json:"special"`
}

// StrengthReport is the full analysis for a single password. Every
// field is always populated; short-circuited reports (empty or common
// passwords) carry zero entropy and an "Instant" crack time.
type StrengthReport struct {
	Strength         Tier     `json:"strength"`
	Score            int      `json:"score"`
	Entropy          float64  `json:"entropy"`
	CrackTime        string   `json:"crack_time"`
	CrackTimeSeconds float64  `json:"crack_time_seconds"`
	Issues           []string `json:"issues"`
	Recommendations  []string `json:"recommendations"`
	Checks           Checks   `json:"checks"`
}

// MaxScore is the highest achievable score (2 for length plus one per
// character class).
const MaxScore = 6
