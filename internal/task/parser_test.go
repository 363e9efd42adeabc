package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Task
	}{
		{
			name: "plain subject",
			line: "Water the plants",
			expected: Task{
				Raw:     "Water the plants",
				Subject: "Water the plants",
			},
		},
		{
			name: "priority and tags",
			line: "(A) Call mom +family @phone",
			expected: Task{
				Raw:      "(A) Call mom +family @phone",
				Priority: 'A',
				Subject:  "Call mom +family @phone",
				Projects: []string{"family"},
				Contexts: []string{"phone"},
			},
		},
		{
			name: "completed with completion and creation dates",
			line: "x 2024-01-02 2024-01-01 Buy milk @errands",
			expected: Task{
				Raw:            "x 2024-01-02 2024-01-01 Buy milk @errands",
				Completed:      true,
				CompletionDate: "2024-01-02",
				CreationDate:   "2024-01-01",
				Subject:        "Buy milk @errands",
				Contexts:       []string{"errands"},
			},
		},
		{
			name: "completed with a single date is creation only",
			line: "x 2024-01-02 Buy milk",
			expected: Task{
				Raw:          "x 2024-01-02 Buy milk",
				Completed:    true,
				CreationDate: "2024-01-02",
				Subject:      "Buy milk",
			},
		},
		{
			name: "completed without dates",
			line: "x Buy milk",
			expected: Task{
				Raw:       "x Buy milk",
				Completed: true,
				Subject:   "Buy milk",
			},
		},
		{
			name: "priority recognized on completed task",
			line: "x 2024-01-02 2024-01-01 (B) Ship release",
			expected: Task{
				Raw:            "x 2024-01-02 2024-01-01 (B) Ship release",
				Completed:      true,
				CompletionDate: "2024-01-02",
				CreationDate:   "2024-01-01",
				Priority:       'B',
				Subject:        "Ship release",
			},
		},
		{
			name: "creation date after priority",
			line: "(C) 2024-03-04 Review budget",
			expected: Task{
				Raw:          "(C) 2024-03-04 Review budget",
				Priority:     'C',
				CreationDate: "2024-03-04",
				Subject:      "Review budget",
			},
		},
		{
			name: "creation date without priority",
			line: "2024-03-04 Review budget",
			expected: Task{
				Raw:          "2024-03-04 Review budget",
				CreationDate: "2024-03-04",
				Subject:      "Review budget",
			},
		},
		{
			name: "due and threshold tags",
			line: "Write report +work due:2024-02-01 t:2024-01-15",
			expected: Task{
				Raw:           "Write report +work due:2024-02-01 t:2024-01-15",
				Subject:       "Write report +work due:2024-02-01 t:2024-01-15",
				Projects:      []string{"work"},
				DueDate:       "2024-02-01",
				ThresholdDate: "2024-01-15",
			},
		},
		{
			name: "invalid due date stays subject text",
			line: "Pay rent due:2024-13-45",
			expected: Task{
				Raw:     "Pay rent due:2024-13-45",
				Subject: "Pay rent due:2024-13-45",
			},
		},
		{
			name: "unrecognized tag keys are ignored",
			line: "Call Bob rec:2024-01-01 pri:A",
			expected: Task{
				Raw:     "Call Bob rec:2024-01-01 pri:A",
				Subject: "Call Bob rec:2024-01-01 pri:A",
			},
		},
		{
			name: "lowercase priority is not a priority",
			line: "(a) not prioritized",
			expected: Task{
				Raw:     "(a) not prioritized",
				Subject: "(a) not prioritized",
			},
		},
		{
			name: "priority not at start is subject text",
			line: "Call mom (A) later",
			expected: Task{
				Raw:     "Call mom (A) later",
				Subject: "Call mom (A) later",
			},
		},
		{
			name: "x without trailing whitespace is not completion",
			line: "xylophone lesson",
			expected: Task{
				Raw:     "xylophone lesson",
				Subject: "xylophone lesson",
			},
		},
		{
			name: "duplicate projects and contexts retained in order",
			line: "Sync notes +work @home +work @office",
			expected: Task{
				Raw:      "Sync notes +work @home +work @office",
				Subject:  "Sync notes +work @home +work @office",
				Projects: []string{"work", "work"},
				Contexts: []string{"home", "office"},
			},
		},
		{
			name: "bare markers are not projects or contexts",
			line: "Mixed + and @ markers",
			expected: Task{
				Raw:     "Mixed + and @ markers",
				Subject: "Mixed + and @ markers",
			},
		},
		{
			name:     "empty line",
			line:     "",
			expected: Task{Raw: ""},
		},
		{
			name:     "whitespace-only line keeps raw verbatim",
			line:     "   \t ",
			expected: Task{Raw: "   \t "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	lines := []string{
		"(A) Call mom +family @phone",
		"x 2024-01-02 2024-01-01 Buy milk @errands",
		"Write report +work due:2024-02-01",
		"  spaced   out   +proj ",
		"",
	}
	for _, line := range lines {
		first := Parse(line)
		second := Parse(first.Raw)
		require.Equal(t, first, second, "reparsing %q changed fields", line)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Tokenize("  a \t b   c "))
	assert.Empty(t, Tokenize("   "))
	assert.Empty(t, Tokenize(""))
}

func TestIsPriorityToken(t *testing.T) {
	assert.True(t, IsPriorityToken("(A)"))
	assert.True(t, IsPriorityToken("(Z)"))
	assert.False(t, IsPriorityToken("(a)"))
	assert.False(t, IsPriorityToken("(AB)"))
	assert.False(t, IsPriorityToken("A"))
	assert.False(t, IsPriorityToken("()"))
}
