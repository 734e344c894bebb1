// Package skills provides skill token normalization and set operations.
// All matching in the service happens on normalized tokens, so a skill
// spelled "  Python " on a resume and "python" in a posting compare equal.
package skills

import "strings"

// Normalize converts a raw skill string to its canonical comparison form:
// lowercased, with leading/trailing whitespace trimmed and interior runs of
// whitespace collapsed to a single space.
func Normalize(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if normalized == "" {
		return ""
	}
	return strings.Join(strings.Fields(normalized), " ")
}

// NormalizeAll normalizes a slice of skills, dropping entries that normalize
// to the empty string. Order is preserved; duplicates are removed keeping the
// first occurrence.
func NormalizeAll(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	normalized := make([]string, 0, len(raw))
	for _, skill := range raw {
		n := Normalize(skill)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}
	return normalized
}
