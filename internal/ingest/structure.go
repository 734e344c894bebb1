package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jordan/career-agent/internal/llm"
	"github.com/jordan/career-agent/internal/prompts"
	"github.com/jordan/career-agent/internal/skills"
	"github.com/jordan/career-agent/internal/types"
)

// Structure asks the reasoning service to turn raw posting text into a
// JobPosting ready for the corpus. Required skills come back normalized.
func Structure(ctx context.Context, client llm.Client, postingText string, timeout time.Duration) (types.JobPosting, error) {
	if postingText == "" {
		return types.JobPosting{}, fmt.Errorf("posting text is empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	prompt := prompts.Format(prompts.MustGet("career.json", "structure-posting"), map[string]string{
		"Posting": postingText,
	})

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return types.JobPosting{}, fmt.Errorf("failed to structure posting: %w", err)
	}

	var posting types.JobPosting
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &posting); err != nil {
		return types.JobPosting{}, fmt.Errorf("malformed structuring response: %w", err)
	}
	if posting.Title == "" {
		return types.JobPosting{}, fmt.Errorf("structuring response has no title")
	}

	posting.ID = 0 // Assigned by corpus.Append.
	posting.RequiredSkills = skills.NormalizeAll(posting.RequiredSkills)
	return posting, nil
}
