// Package corpus provides the common-password denylist used by the
// strength checker. The default set is compiled into the binary so the
// service has no runtime data dependencies; deployments can extend or
// replace it with their own list via configuration.
package corpus

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed passwords.txt
var embeddedRaw string

// Set is a case-insensitive membership structure over known-bad
// passwords. Lookups never normalize beyond lowercasing; "Password"
// and "PASSWORD" hit the same entry.
type Set struct {
	entries map[string]struct{}
}

// Default returns the built-in set parsed from the embedded list.
func Default() *Set {
	return parse(embeddedRaw)
}

// FromReader loads a set from newline-delimited input, one password per
// line. Blank lines and surrounding whitespace are ignored.
func FromReader(r io.Reader) (*Set, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return parse(string(raw)), nil
}

// FromFile loads a set from a newline-delimited file.
func FromFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()
	return FromReader(f)
}

func parse(raw string) *Set {
	lines := strings.Split(raw, "\n")
	s := &Set{entries: make(map[string]struct{}, len(lines))}
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		s.entries[strings.ToLower(pw)] = struct{}{}
	}
	return s
}

// Add inserts extra entries, lowercased. Used to merge per-deployment
// banned passwords on top of the embedded list.
func (s *Set) Add(passwords ...string) {
	for _, pw := range passwords {
		pw = strings.TrimSpace(pw)
		if pw == "" {
			continue
		}
		s.entries[strings.ToLower(pw)] = struct{}{}
	}
}

// Contains reports whether the password appears in the set, ignoring
// case.
func (s *Set) Contains(password string) bool {
	_, ok := s.entries[strings.ToLower(password)]
	return ok
}

// Len returns the number of distinct entries.
func (s *Set) Len() int {
	return len(s.entries)
}
