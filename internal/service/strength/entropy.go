package strength

import (
	"math"
	"strings"

	"github.com/Ahmad007-lin/PasswordChecker/internal/model"
)

// specialChars is the punctuation class used for classification.
// Classification is ASCII based; letters and digits outside these
// ranges count toward length but toward no class.
const specialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// Per-class charset sizes for the entropy estimate. The special class
// is weighted at a nominal 32 regardless of the literal set's size.
const (
	lowerSize   = 26
	upperSize   = 26
	digitSize   = 10
	specialSize = 32
)

func classify(password string) model.Checks {
	var c model.Checks
	n := 0
	for _, r := range password {
		n++
		switch {
		case r >= 'a' && r <= 'z':
			c.Lowercase = true
		case r >= 'A' && r <= 'Z':
			c.Uppercase = true
		case r >= '0' && r <= '9':
			c.Numbers = true
		case strings.ContainsRune(specialChars, r):
			c.Special = true
		}
	}
	c.Length = n >= minLength
	return c
}

func runeLength(password string) int {
	n := 0
	for range password {
		n++
	}
	return n
}

// Entropy estimates password entropy in bits as length x log2(charset),
// where the charset is the union of the character classes present.
// This assumes uniform random selection from the detected classes; it
// is a heuristic, not a cryptographic measure. A password matching no
// class has entropy 0.
func (s *Service) Entropy(password string) float64 {
	c := classify(password)

	size := 0
	if c.Lowercase {
		size += lowerSize
	}
	if c.Uppercase {
		size += upperSize
	}
	if c.Numbers {
		size += digitSize
	}
	if c.Special {
		size += specialSize
	}
	if size == 0 {
		return 0
	}

	return float64(runeLength(password)) * math.Log2(float64(size))
}
