// Package generator produces random passwords with guaranteed class
// coverage. Randomness comes from crypto/rand only; candidates are
// screened with zxcvbn and rebuilt a bounded number of times before the
// last one is accepted, so generation always yields a password.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/Ahmad007-lin/PasswordChecker/pkg/metrics"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	minLength = 8

	// One build plus up to five rebuilds when the screen rejects a
	// candidate. The last candidate is returned regardless.
	maxAttempts = 6

	// zxcvbn slows down sharply on long inputs, so only a prefix is
	// screened.
	maxScreenedLen = 50
)

// Characters stripped from their classes when similar-looking
// characters are excluded.
const (
	similarLower   = "li"
	similarUpper   = "IO"
	similarDigits  = "01"
	similarSpecial = "|"
)

type Service struct {
	minScore int
	metrics  *metrics.Metrics
}

// NewService builds a generator. minScore is the zxcvbn score (0-4) a
// candidate must reach; zero or negative disables the screen. metrics
// may be nil.
func NewService(minScore int, m *metrics.Metrics) *Service {
	return &Service{minScore: minScore, metrics: m}
}

// Generate returns a random password of the requested length, raised to
// the minimum of 8 when shorter. The password always contains at least
// one lowercase letter, one uppercase letter, one digit and one special
// character. An error is only possible when the system randomness
// source fails.
func (s *Service) Generate(length int, excludeSimilar bool) (string, error) {
	if length < minLength {
		length = minLength
	}

	var password string
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var err error
		password, err = s.build(length, excludeSimilar)
		if err != nil {
			return "", err
		}
		if s.strongEnough(password) {
			break
		}
		if s.metrics != nil {
			s.metrics.GenerationRetries.Inc()
		}
	}

	if s.metrics != nil {
		s.metrics.GeneratedTotal.Inc()
	}
	return password, nil
}

func (s *Service) build(length int, excludeSimilar bool) (string, error) {
	lower, upper, digits, special := lowercaseChars, uppercaseChars, digitChars, specialChars
	if excludeSimilar {
		lower = strip(lower, similarLower)
		upper = strip(upper, similarUpper)
		digits = strip(digits, similarDigits)
		special = strip(special, similarSpecial)
	}

	chars := make([]byte, 0, length)
	for _, class := range []string{lower, upper, digits, special} {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	union := lower + upper + digits + special
	for i := len(chars); i < length; i++ {
		c, err := pick(union)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	if err := shuffle(chars); err != nil {
		return "", err
	}
	return string(chars), nil
}

func (s *Service) strongEnough(password string) bool {
	if s.minScore <= 0 {
		return true
	}
	screened := password
	if len(screened) > maxScreenedLen {
		screened = screened[:maxScreenedLen]
	}
	return zxcvbn.PasswordStrength(screened, nil).Score >= s.minScore
}

func strip(set, drop string) string {
	var b strings.Builder
	for _, r := range set {
		if !strings.ContainsRune(drop, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("random index: %w", err)
	}
	return set[n.Int64()], nil
}

// shuffle applies a Fisher-Yates permutation driven by crypto/rand.
func shuffle(chars []byte) error {
	for i := len(chars) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("random swap: %w", err)
		}
		j := n.Int64()
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}
