package strength

import (
	"fmt"
	"math"
)

const crackInstant = "Instant"

// guessesPerSecond models a single modern GPU rig doing an offline
// brute-force attack.
const guessesPerSecond = 1e9

// CrackSeconds converts entropy bits into the average-case number of
// seconds a brute-force attack needs at guessesPerSecond. Entropies
// large enough to overflow float64 clamp to MaxFloat64 so the result
// is always finite.
func (s *Service) CrackSeconds(entropy float64) float64 {
	if entropy <= 0 {
		return 0
	}
	attempts := math.Exp2(entropy - 1)
	if math.IsInf(attempts, 1) {
		return math.MaxFloat64
	}
	return attempts / guessesPerSecond
}

// CrackTime renders CrackSeconds as a human-readable estimate. Each
// bracket is an exclusive upper bound; the first match wins.
func (s *Service) CrackTime(entropy float64) string {
	if entropy <= 0 {
		return crackInstant
	}

	seconds := s.CrackSeconds(entropy)
	switch {
	case seconds < 1:
		return "Less than 1 second"
	case seconds < 60:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1f minutes", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%.1f hours", seconds/3600)
	case seconds < 31536000:
		return fmt.Sprintf("%.1f days", seconds/86400)
	default:
		return fmt.Sprintf("%.1f years", seconds/31536000)
	}
}
