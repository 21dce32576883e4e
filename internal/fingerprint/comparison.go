package fingerprint

import (
	"fmt"
	"strings"
)

// minPrefix is the shortest abbreviated hash Compare accepts.
const minPrefix = 8

// Compare returns an error unless actual matches expected. expected may be
// abbreviated to a prefix of at least 8 characters.
func Compare(expected string, actual *TypeFingerprint) error {
	expected = strings.ToLower(strings.TrimSpace(expected))
	if len(expected) < minPrefix {
		return fmt.Errorf("expected fingerprint %q is too short (need at least %d characters)", expected, minPrefix)
	}
	if strings.HasPrefix(actual.Hash, expected) {
		return nil
	}

	actualPreview := actual.Hash
	if len(actualPreview) > len(expected) {
		actualPreview = actualPreview[:len(expected)]
	}
	if len(actualPreview) > 16 {
		actualPreview = actualPreview[:16]
	}
	expectedPreview := expected
	if len(expectedPreview) > 16 {
		expectedPreview = expectedPreview[:16]
	}

	return fmt.Errorf("type fingerprint mismatch - expected: %s, actual: %s",
		expectedPreview, actualPreview)
}
