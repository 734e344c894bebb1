// Package types defines the data model shared across the career agent:
// job postings, match reports, and the API request/response shapes.
package types

// JobPosting is a single entry in the job corpus. Postings are immutable
// once loaded; the corpus file is the only source.
type JobPosting struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	RequiredSkills []string `json:"required_skills"`
	Description    string   `json:"description"`
}

// Resource is a single learning suggestion for one missing skill.
type Resource struct {
	Skill      string `json:"skill"`
	Suggestion string `json:"suggestion"`
}

// LearningPlan is an ordered list of learning resources addressing a skill
// gap. An empty plan means the candidate already covers every required skill.
type LearningPlan []Resource

// JobMatch is one matched posting in a report: the posting identity, its
// match score, the missing skills, and the plan for closing the gap.
type JobMatch struct {
	JobID        int          `json:"job_id"`
	Title        string       `json:"title"`
	Company      string       `json:"company"`
	MatchScore   int          `json:"match_score"`
	SkillGaps    []string     `json:"skill_gaps,omitempty"`
	LearningPlan LearningPlan `json:"learning_plan,omitempty"`
}

// MatchReport is the full response for a match run.
type MatchReport struct {
	Status  string     `json:"status"`
	Report  string     `json:"report,omitempty"`
	Matches []JobMatch `json:"matches"`
}

// Report status values, mirroring what the UI expects.
const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)
