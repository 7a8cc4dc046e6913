package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGenerateFlags resets package-level generate flag vars to defaults
// so tests do not leak state into each other.
func resetGenerateFlags() {
	generateLength = 16
	generateCount = 1
	generateAllowSimilar = false
	generateCopy = false
	generateCheck = false
}

func TestGenerateCommandDefaults(t *testing.T) {
	resetGenerateFlags()

	output, err := executeCommand("generate")
	require.NoError(t, err)

	password := strings.TrimSpace(output)
	assert.Len(t, password, 16)
	assert.False(t, strings.ContainsAny(password, "liIO01|"),
		"similar characters should be excluded by default, got %q", password)
}

func TestGenerateCommandLengthFlag(t *testing.T) {
	resetGenerateFlags()

	output, err := executeCommand("generate", "--length", "24")
	require.NoError(t, err)

	assert.Len(t, strings.TrimSpace(output), 24)
}

func TestGenerateCommandClampsLength(t *testing.T) {
	resetGenerateFlags()
	output, err := executeCommand("generate", "-l", "4")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(output), 8)

	resetGenerateFlags()
	output, err = executeCommand("generate", "-l", "100")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(output), 50)
}

func TestGenerateCommandCount(t *testing.T) {
	resetGenerateFlags()

	output, err := executeCommand("generate", "-n", "3", "-l", "12")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 12)
	}
}

func TestGenerateCommandAllowSimilar(t *testing.T) {
	resetGenerateFlags()

	output, err := executeCommand("generate", "--allow-similar", "-l", "12")
	require.NoError(t, err)

	assert.Len(t, strings.TrimSpace(output), 12)
}

func TestGenerateCommandWithCheck(t *testing.T) {
	resetGenerateFlags()

	output, err := executeCommand("generate", "--check")
	require.NoError(t, err)

	assert.Contains(t, output, "Generated Password")
	assert.Contains(t, output, "Strength:")
	assert.Contains(t, output, "Estimated crack time:")
}

func TestGenerateCommandCopyNeverFails(t *testing.T) {
	resetGenerateFlags()

	output, err := executeCommand("generate", "--copy")
	require.NoError(t, err, "clipboard problems must not fail the command")

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.NotEmpty(t, lines)
	assert.Len(t, lines[0], 16, "password is printed before any clipboard note")
}

func TestGenerateCommandRejectsNonNumericLength(t *testing.T) {
	resetGenerateFlags()

	_, err := executeCommand("generate", "--length", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}
