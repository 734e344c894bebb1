// Package corpus loads the static job corpus and ranks postings against a
// candidate's skill set. The corpus is read once at startup and never
// mutated afterwards, so it is safe to share across requests without locking.
package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jordan/career-agent/internal/skills"
	"github.com/jordan/career-agent/internal/types"
)

//go:embed job_corpus.schema.json
var corpusSchema string

// Corpus is the read-only set of job postings used as the match universe.
// Postings keep the order they appear in the backing file; that order is the
// tiebreaker when rankings are equal.
type Corpus struct {
	path     string
	postings []types.JobPosting
}

// Load reads and validates the corpus file at path. The file must be a JSON
// array of postings matching the embedded schema; duplicate posting IDs are
// rejected. Any failure returns an *UnavailableError.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnavailableError{Path: path, Message: "failed to read corpus file", Cause: err}
	}

	schemaLoader := gojsonschema.NewStringLoader(corpusSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &UnavailableError{Path: path, Message: "corpus is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(desc.String())
		}
		return nil, &UnavailableError{Path: path, Message: "corpus failed schema validation: " + sb.String()}
	}

	var postings []types.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, &UnavailableError{Path: path, Message: "failed to parse corpus JSON", Cause: err}
	}

	seen := make(map[int]struct{}, len(postings))
	for _, p := range postings {
		if _, dup := seen[p.ID]; dup {
			return nil, &UnavailableError{Path: path, Message: fmt.Sprintf("duplicate posting id %d", p.ID)}
		}
		seen[p.ID] = struct{}{}
	}

	return &Corpus{path: path, postings: postings}, nil
}

// Len returns the number of postings in the corpus.
func (c *Corpus) Len() int {
	return len(c.postings)
}

// Postings returns all postings in file order.
func (c *Corpus) Postings() []types.JobPosting {
	out := make([]types.JobPosting, len(c.postings))
	copy(out, c.postings)
	return out
}

// FindMatches ranks postings by the number of required skills the candidate
// already has, descending. Ties keep the original file order, so identical
// inputs always produce identical rankings.
func (c *Corpus) FindMatches(candidate skills.Set) []types.JobPosting {
	return Rank(c.Postings(), candidate)
}

// Rank orders postings by required-skill overlap with the candidate,
// descending, preserving the incoming order on ties. The input slice is not
// modified.
func Rank(postings []types.JobPosting, candidate skills.Set) []types.JobPosting {
	ranked := make([]types.JobPosting, len(postings))
	copy(ranked, postings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return candidate.Overlap(ranked[i].RequiredSkills) > candidate.Overlap(ranked[j].RequiredSkills)
	})
	return ranked
}

// FilterTitle returns the postings whose title contains substr,
// case-insensitively. An empty substr keeps every posting.
func FilterTitle(postings []types.JobPosting, substr string) []types.JobPosting {
	substr = strings.ToLower(strings.TrimSpace(substr))
	if substr == "" {
		return postings
	}
	var kept []types.JobPosting
	for _, p := range postings {
		if strings.Contains(strings.ToLower(p.Title), substr) {
			kept = append(kept, p)
		}
	}
	return kept
}

// MatchScore returns the percentage of a posting's required skills the
// candidate covers, truncated to an integer. A posting with no required
// skills scores zero.
func MatchScore(p types.JobPosting, candidate skills.Set) int {
	required := skills.NormalizeAll(p.RequiredSkills)
	if len(required) == 0 {
		return 0
	}
	return candidate.Overlap(required) * 100 / len(required)
}

// Append adds a posting to the corpus file on disk, assigning the next free
// ID if the posting has none. It is used by the ingest tool, not by the
// server: a running server keeps serving the corpus it loaded at startup.
func Append(path string, posting types.JobPosting) (types.JobPosting, error) {
	var postings []types.JobPosting
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &postings); err != nil {
			return types.JobPosting{}, &UnavailableError{Path: path, Message: "failed to parse corpus JSON", Cause: err}
		}
	case os.IsNotExist(err):
		// A fresh corpus file is created below.
	default:
		return types.JobPosting{}, &UnavailableError{Path: path, Message: "failed to read corpus file", Cause: err}
	}

	if posting.ID == 0 {
		maxID := 0
		for _, p := range postings {
			if p.ID > maxID {
				maxID = p.ID
			}
		}
		posting.ID = maxID + 1
	}
	for _, p := range postings {
		if p.ID == posting.ID {
			return types.JobPosting{}, fmt.Errorf("posting id %d already exists in %s", posting.ID, path)
		}
	}
	posting.RequiredSkills = skills.NormalizeAll(posting.RequiredSkills)
	postings = append(postings, posting)

	out, err := json.MarshalIndent(postings, "", "  ")
	if err != nil {
		return types.JobPosting{}, fmt.Errorf("failed to encode corpus: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return types.JobPosting{}, fmt.Errorf("failed to write corpus file %s: %w", path, err)
	}
	return posting, nil
}
