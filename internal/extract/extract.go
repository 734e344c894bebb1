// Package extract turns free-text resume content into a normalized skill
// set by delegating to the reasoning service.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jordan/career-agent/internal/llm"
	"github.com/jordan/career-agent/internal/prompts"
	"github.com/jordan/career-agent/internal/skills"
)

// DefaultTimeout bounds a single extraction call. The upstream service
// specifies no timeout of its own, so the transport default would otherwise
// apply.
const DefaultTimeout = 30 * time.Second

// ExtractionError indicates the reasoning service failed or returned a
// malformed response. It is user-visible: the request that triggered the
// extraction fails with it, with no local recovery.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("skill extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Extractor extracts skill sets from resume text via the LLM.
type Extractor struct {
	client  llm.Client
	timeout time.Duration
}

// NewExtractor creates an Extractor. A zero timeout uses DefaultTimeout.
func NewExtractor(client llm.Client, timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{client: client, timeout: timeout}
}

// skillsResponse is the JSON shape the extraction prompt asks for.
type skillsResponse struct {
	Skills []string `json:"skills"`
}

// Skills extracts a normalized skill set from resume text.
func (e *Extractor) Skills(ctx context.Context, resumeText string) (skills.Set, error) {
	if resumeText == "" {
		return nil, &ExtractionError{Message: "resume text is empty"}
	}

	prompt := prompts.Format(prompts.MustGet("career.json", "extract-skills"), map[string]string{
		"Resume": resumeText,
	})

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &ExtractionError{Message: "reasoning service error", Cause: err}
	}

	var resp skillsResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, &ExtractionError{Message: "malformed response", Cause: err}
	}
	if len(resp.Skills) == 0 {
		return nil, &ExtractionError{Message: "no skills found in resume"}
	}

	return skills.NewSet(resp.Skills...), nil
}
