package skills

import "sort"

// Set is a set of normalized skill tokens.
type Set map[string]struct{}

// NewSet builds a Set from raw skill strings, normalizing each entry.
// Entries that normalize to the empty string are dropped.
func NewSet(raw ...string) Set {
	s := make(Set, len(raw))
	for _, skill := range raw {
		if n := Normalize(skill); n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Has reports whether the set contains the skill after normalization.
func (s Set) Has(skill string) bool {
	_, ok := s[Normalize(skill)]
	return ok
}

// Gap returns the required skills that are absent from s, in the order they
// appear in required. A skill present in both sets is never part of the gap.
func (s Set) Gap(required []string) []string {
	var missing []string
	seen := make(map[string]struct{}, len(required))
	for _, skill := range required {
		n := Normalize(skill)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := s[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// Overlap returns how many of the required skills are present in s.
// Duplicate entries in required count once.
func (s Set) Overlap(required []string) int {
	counted := make(map[string]struct{}, len(required))
	count := 0
	for _, skill := range required {
		n := Normalize(skill)
		if n == "" {
			continue
		}
		if _, dup := counted[n]; dup {
			continue
		}
		counted[n] = struct{}{}
		if _, ok := s[n]; ok {
			count++
		}
	}
	return count
}

// Sorted returns the set's members in lexical order.
func (s Set) Sorted() []string {
	members := make([]string, 0, len(s))
	for skill := range s {
		members = append(members, skill)
	}
	sort.Strings(members)
	return members
}
