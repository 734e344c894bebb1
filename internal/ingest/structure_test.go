package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/career-agent/internal/llm"
)

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestStructure_Success(t *testing.T) {
	client := &fakeClient{response: `{
	  "title": "AI Engineer",
	  "company": "AI Innovators",
	  "required_skills": ["Machine Learning", "AI", "ai"],
	  "description": "Seeking an AI Engineer."
	}`}

	posting, err := Structure(context.Background(), client, "raw posting text", 0)
	require.NoError(t, err)

	assert.Equal(t, 0, posting.ID)
	assert.Equal(t, "AI Engineer", posting.Title)
	assert.Equal(t, []string{"machine learning", "ai"}, posting.RequiredSkills)
}

func TestStructure_EmptyText(t *testing.T) {
	_, err := Structure(context.Background(), &fakeClient{}, "", 0)
	assert.Error(t, err)
}

func TestStructure_RemoteError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota")}
	_, err := Structure(context.Background(), client, "text", 0)
	assert.Error(t, err)
}

func TestStructure_MalformedResponse(t *testing.T) {
	client := &fakeClient{response: "nope"}
	_, err := Structure(context.Background(), client, "text", 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestStructure_MissingTitle(t *testing.T) {
	client := &fakeClient{response: `{"company": "X", "required_skills": [], "description": "d"}`}
	_, err := Structure(context.Background(), client, "text", 0)
	assert.Error(t, err)
}
