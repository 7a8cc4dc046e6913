package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContainsKnownEntries(t *testing.T) {
	s := Default()

	assert.True(t, s.Contains("password"))
	assert.True(t, s.Contains("123456"))
	assert.True(t, s.Contains("letmein"))
	assert.False(t, s.Contains("correct-horse-battery-staple"))
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	s := Default()

	assert.True(t, s.Contains("PASSWORD"))
	assert.True(t, s.Contains("QwErTy"))
	assert.True(t, s.Contains("TrustNo1"))
}

func TestAddMergesAndNormalizes(t *testing.T) {
	s := Default()
	before := s.Len()

	s.Add("Hunter2", "  spaced  ", "")

	assert.Equal(t, before+2, s.Len())
	assert.True(t, s.Contains("hunter2"))
	assert.True(t, s.Contains("SPACED"))
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banned.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\n\n  Bravo \ncharlie\n"), 0o600))

	s, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("ALPHA"))
	assert.True(t, s.Contains("bravo"))
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestFromReader(t *testing.T) {
	s, err := FromReader(strings.NewReader("One\ntwo\n\nTWO\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("one"))
	assert.True(t, s.Contains("two"))
}

func TestDefaultDeduplicates(t *testing.T) {
	s := Default()

	// The source list is deduplicated at parse time.
	assert.Equal(t, 81, s.Len())
}
