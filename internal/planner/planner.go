// Package planner orchestrates the match-and-plan pipeline: rank corpus
// postings against a candidate's skills, compute the per-posting skill gap,
// and turn each gap into a learning plan via the reasoning service.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jordan/career-agent/internal/corpus"
	"github.com/jordan/career-agent/internal/llm"
	"github.com/jordan/career-agent/internal/prompts"
	"github.com/jordan/career-agent/internal/skills"
	"github.com/jordan/career-agent/internal/types"
)

const (
	// DefaultTimeout bounds a single learning-plan call.
	DefaultTimeout = 30 * time.Second
	// maxConcurrentPlans caps in-flight reasoning calls per request. Plan
	// calls are independent, so they run concurrently, but an unbounded
	// fan-out would hammer the upstream quota.
	maxConcurrentPlans = 4
)

// PlanError indicates the reasoning service failed to produce a learning
// plan for one posting. The posting is omitted from the report; other
// postings proceed independently.
type PlanError struct {
	JobID   int
	Message string
	Cause   error
}

func (e *PlanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("learning plan failed for job %d: %s: %v", e.JobID, e.Message, e.Cause)
	}
	return fmt.Sprintf("learning plan failed for job %d: %s", e.JobID, e.Message)
}

func (e *PlanError) Unwrap() error {
	return e.Cause
}

// Planner matches candidate skills against the corpus and generates
// learning plans for the gaps.
type Planner struct {
	corpus  *corpus.Corpus
	client  llm.Client
	timeout time.Duration
}

// New creates a Planner. A zero timeout uses DefaultTimeout.
func New(c *corpus.Corpus, client llm.Client, timeout time.Duration) *Planner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Planner{corpus: c, client: client, timeout: timeout}
}

// planResponse is the JSON shape the learning-plan prompt asks for.
type planResponse struct {
	Plan []types.Resource `json:"plan"`
}

// resourcesResponse is the JSON shape the skill-resources prompt asks for.
type resourcesResponse struct {
	Resources []types.Resource `json:"resources"`
}

// MatchAndPlan filters the corpus by the optional title substring, ranks the
// remaining postings by skill overlap, computes the gap per posting, and
// generates a learning plan for every non-empty gap. Plan calls run
// concurrently; a failed call drops only that posting. Rank order is
// preserved in the report regardless of call completion order.
func (p *Planner) MatchAndPlan(ctx context.Context, resumeSkills skills.Set, titleFilter string) (*types.MatchReport, error) {
	postings := corpus.Rank(corpus.FilterTitle(p.corpus.Postings(), titleFilter), resumeSkills)
	if len(postings) == 0 {
		return &types.MatchReport{
			Status:  types.StatusSuccess,
			Report:  "No suitable jobs found.",
			Matches: []types.JobMatch{},
		}, nil
	}

	// results[i] corresponds to postings[i]; nil marks an omitted posting.
	results := make([]*types.JobMatch, len(postings))
	var failures atomic.Int32

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPlans)

	for i, posting := range postings {
		g.Go(func() error {
			match := &types.JobMatch{
				JobID:      posting.ID,
				Title:      posting.Title,
				Company:    posting.Company,
				MatchScore: corpus.MatchScore(posting, resumeSkills),
				SkillGaps:  resumeSkills.Gap(posting.RequiredSkills),
			}

			// An empty gap needs no plan and no reasoning call.
			if len(match.SkillGaps) > 0 {
				plan, err := p.planForGap(gCtx, posting.Title, match.SkillGaps)
				if err != nil {
					log.Printf("omitting job %d from report: %v", posting.ID, err)
					failures.Add(1)
					return nil
				}
				match.LearningPlan = plan
			}

			results[i] = match
			return nil
		})
	}

	// Goroutines only signal cancellation through gCtx; per-posting plan
	// errors are swallowed above so the rest of the report survives.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]types.JobMatch, 0, len(results))
	for _, match := range results {
		if match != nil {
			matches = append(matches, *match)
		}
	}

	if len(matches) == 0 && failures.Load() > 0 {
		return nil, &PlanError{Message: fmt.Sprintf("all %d learning plan calls failed", failures.Load())}
	}

	return &types.MatchReport{Status: types.StatusSuccess, Matches: matches}, nil
}

// planForGap asks the reasoning service for one learning plan.
func (p *Planner) planForGap(ctx context.Context, title string, gaps []string) (types.LearningPlan, error) {
	prompt := prompts.Format(prompts.MustGet("career.json", "learning-plan"), map[string]string{
		"Title": title,
		"Gaps":  strings.Join(gaps, ", "),
	})

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &PlanError{Message: "reasoning service error", Cause: err}
	}

	var resp planResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, &PlanError{Message: "malformed response", Cause: err}
	}
	if len(resp.Plan) == 0 {
		return nil, &PlanError{Message: "empty plan for non-empty gap"}
	}

	return resp.Plan, nil
}

// ResourcesForSkill asks the reasoning service for learning resources
// addressing a single skill.
func (p *Planner) ResourcesForSkill(ctx context.Context, skill string) ([]types.Resource, error) {
	normalized := skills.Normalize(skill)
	if normalized == "" {
		return nil, &PlanError{Message: "skill is empty"}
	}

	prompt := prompts.Format(prompts.MustGet("career.json", "skill-resources"), map[string]string{
		"Skill": normalized,
	})

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &PlanError{Message: "reasoning service error", Cause: err}
	}

	var resp resourcesResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, &PlanError{Message: "malformed response", Cause: err}
	}
	if len(resp.Resources) == 0 {
		return nil, &PlanError{Message: "no resources returned"}
	}

	return resp.Resources, nil
}
