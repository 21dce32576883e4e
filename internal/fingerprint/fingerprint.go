// Package fingerprint hashes a set of resolved column types so that a DDL
// file and a live schema can be checked for type drift.
package fingerprint

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
)

// ColumnType is the resolved type of one column rendered as SQL. Columns
// that failed to resolve carry their diagnostic code instead.
type ColumnType struct {
	Column string `json:"column"`
	Type   string `json:"type"`
}

// TypeFingerprint represents a fingerprint of a set of column types
type TypeFingerprint struct {
	Hash string `json:"hash"` // SHA256 of the sorted column types
}

// Compute generates a fingerprint for cols. Column order does not matter.
func Compute(cols []ColumnType) (*TypeFingerprint, error) {
	sorted := make([]ColumnType, len(cols))
	copy(sorted, cols)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Column < sorted[j].Column
	})

	hash, err := hashObject(sorted)
	if err != nil {
		return nil, fmt.Errorf("failed to compute type hash: %w", err)
	}
	return &TypeFingerprint{Hash: hash}, nil
}

// hashObject computes a SHA256 hash of any object
func hashObject(obj interface{}) (string, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}

// String returns a human-readable representation of the fingerprint
func (f *TypeFingerprint) String() string {
	if len(f.Hash) >= 8 {
		return fmt.Sprintf("Type fingerprint: %s", f.Hash[:8])
	}
	return fmt.Sprintf("Type fingerprint: %s", f.Hash)
}
