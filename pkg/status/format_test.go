package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestFormatFileChange(t *testing.T) {
	f := NewDefaultFileFormatter()

	tests := []struct {
		name   string
		change FileChange
		want   []string
	}{
		{
			name:   "created",
			change: FileChange{Path: "/www/images/a.png", Status: StatusCreated},
			want:   []string{"✓", "/www/images/a.png", "created"},
		},
		{
			name:   "replaced",
			change: FileChange{Path: "/www/correct_answers.json", Status: StatusReplaced},
			want:   []string{"⟳", "/www/correct_answers.json", "replaced"},
		},
		{
			name: "skipped_with_description",
			change: FileChange{
				Path:        "/www/images/scratch.tmp",
				Status:      StatusSkipped,
				Description: "ignored by pattern",
			},
			want: []string{"-", "scratch.tmp", "skipped", "ignored by pattern"},
		},
		{
			name:   "error",
			change: FileChange{Path: "/www/images/a.png", Status: StatusError},
			want:   []string{"✗", "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := f.FormatFileChange(tt.change)
			for _, want := range tt.want {
				assert.Contains(t, line, want)
			}
		})
	}
}

func TestFormatSummary(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Contains(t, f.FormatSummary(3, 1), "3")
	assert.Contains(t, f.FormatSummary(3, 1), "1")
}

func TestFormatError(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Contains(t, f.FormatError(errors.New("disk full")), "disk full")
}
