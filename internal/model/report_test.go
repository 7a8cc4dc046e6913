package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierString(t *testing.T) {
	assert.Equal(t, "Very Weak", TierVeryWeak.String())
	assert.Equal(t, "Weak", TierWeak.String())
	assert.Equal(t, "Moderate", TierModerate.String())
	assert.Equal(t, "Strong", TierStrong.String())
}

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierWeak},
		{1, TierWeak},
		{2, TierWeak},
		{3, TierModerate},
		{4, TierModerate},
		{5, TierStrong},
		{6, TierStrong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForScore(tt.score), "score %d", tt.score)
	}
}

func TestStrengthReportJSON(t *testing.T) {
	report := StrengthReport{
		Strength:         TierModerate,
		Score:            4,
		Entropy:          52.44,
		CrackTime:        "2.9 hours",
		CrackTimeSeconds: 10500,
		Issues:           []string{"No special characters"},
		Recommendations:  []string{"Add special characters (!@#$%^&*...)"},
		Checks: Checks{
			Length:    true,
			Uppercase: true,
			Lowercase: true,
			Numbers:   true,
		},
	}

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "Moderate", decoded["strength"])
	assert.Equal(t, float64(4), decoded["score"])
	assert.Equal(t, "2.9 hours", decoded["crack_time"])

	checks, ok := decoded["checks"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, checks["length"])
	assert.Equal(t, false, checks["special"])
}
