package server

import (
	"context"

	"github.com/jordan/career-agent/internal/server/ratelimit"
	"github.com/jordan/career-agent/internal/skills"
	"github.com/jordan/career-agent/internal/types"
)

// fakeExtractor returns a canned skill set for handler tests.
type fakeExtractor struct {
	set        skills.Set
	err        error
	lastResume string
}

func (f *fakeExtractor) Skills(_ context.Context, resumeText string) (skills.Set, error) {
	f.lastResume = resumeText
	if f.err != nil {
		return nil, f.err
	}
	return f.set, nil
}

// fakePlanner returns a canned report for handler tests.
type fakePlanner struct {
	report    *types.MatchReport
	resources []types.Resource
	err       error
	lastSet   skills.Set
	lastTitle string
	lastSkill string
}

func (f *fakePlanner) MatchAndPlan(_ context.Context, resumeSkills skills.Set, titleFilter string) (*types.MatchReport, error) {
	f.lastSet = resumeSkills
	f.lastTitle = titleFilter
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func (f *fakePlanner) ResourcesForSkill(_ context.Context, skill string) ([]types.Resource, error) {
	f.lastSkill = skill
	if f.err != nil {
		return nil, f.err
	}
	return f.resources, nil
}

// newTestServer builds a Server with fakes and rate limiting disabled.
func newTestServer(extractor SkillExtractor, matchPlanner MatchPlanner) *Server {
	return &Server{
		extractor:   extractor,
		planner:     matchPlanner,
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
}
