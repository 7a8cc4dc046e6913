// Package strength evaluates passwords: composition checks, a 0-6
// score, an entropy estimate and a brute-force crack-time projection,
// combined into a single report.
package strength

import (
	"github.com/Ahmad007-lin/PasswordChecker/internal/corpus"
	"github.com/Ahmad007-lin/PasswordChecker/internal/model"
)

const (
	minLength    = 8
	strongLength = 12
)

type Service struct {
	corpus *corpus.Set
}

func NewService(corpus *corpus.Set) *Service {
	return &Service{corpus: corpus}
}

// Evaluate analyzes a password and returns a complete report. It never
// fails: empty and common passwords short-circuit to a very-weak report
// with zero entropy and an "Instant" crack time.
func (s *Service) Evaluate(password string) *model.StrengthReport {
	if password == "" {
		return &model.StrengthReport{
			Strength:        model.TierVeryWeak,
			CrackTime:       crackInstant,
			Issues:          []string{"Password is empty"},
			Recommendations: []string{},
		}
	}

	checks := classify(password)

	if s.corpus.Contains(password) {
		return &model.StrengthReport{
			Strength:        model.TierVeryWeak,
			CrackTime:       crackInstant,
			Issues:          []string{"Password is in the common passwords list"},
			Recommendations: []string{"Choose a unique password that's not commonly used"},
			Checks:          checks,
		}
	}

	score := 0
	issues := []string{}
	recommendations := []string{}

	switch {
	case !checks.Length:
		issues = append(issues, "Password is too short (minimum 8 characters)")
		recommendations = append(recommendations, "Increase password length to at least 8 characters")
	case runeLength(password) >= strongLength:
		score += 2
	default:
		score++
	}

	if checks.Uppercase {
		score++
	} else {
		issues = append(issues, "No uppercase letters")
		recommendations = append(recommendations, "Add uppercase letters (A-Z)")
	}

	if checks.Lowercase {
		score++
	} else {
		issues = append(issues, "No lowercase letters")
		recommendations = append(recommendations, "Add lowercase letters (a-z)")
	}

	if checks.Numbers {
		score++
	} else {
		issues = append(issues, "No numbers")
		recommendations = append(recommendations, "Add numbers (0-9)")
	}

	if checks.Special {
		score++
	} else {
		issues = append(issues, "No special characters")
		recommendations = append(recommendations, "Add special characters (!@#$%^&*...)")
	}

	entropy := s.Entropy(password)

	return &model.StrengthReport{
		Strength:         model.TierForScore(score),
		Score:            score,
		Entropy:          entropy,
		CrackTime:        s.CrackTime(entropy),
		CrackTimeSeconds: s.CrackSeconds(entropy),
		Issues:           issues,
		Recommendations:  recommendations,
		Checks:           checks,
	}
}

// IsCommon reports whether the password is in the denylist corpus.
func (s *Service) IsCommon(password string) bool {
	return s.corpus.Contains(password)
}
