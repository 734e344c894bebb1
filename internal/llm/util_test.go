package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json untouched", `{"skills": ["python"]}`, `{"skills": ["python"]}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"generic fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence with language id", "```javascript\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n ", `{"a": 1}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}
