package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBlogTitle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"Valid", "My First Post", false},
		{"Exactly Max Length", strings.Repeat("a", 200), false},
		{"Empty", "", true},
		{"Whitespace Only", "   ", true},
		{"Too Long", strings.Repeat("a", 201), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBlogTitle(tt.title)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBlogSummary(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateBlogSummary(""))
	assert.NoError(t, ValidateBlogSummary(strings.Repeat("s", 500)))
	assert.Error(t, ValidateBlogSummary(strings.Repeat("s", 501)))
}

func TestValidateBlogStatus(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateBlogStatus("draft"))
	assert.NoError(t, ValidateBlogStatus("published"))
	assert.Error(t, ValidateBlogStatus("archived"))
	assert.Error(t, ValidateBlogStatus(""))
}

func TestValidateTags(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateTags(nil))
	assert.NoError(t, ValidateTags([]string{"go", "backend"}))
	assert.Error(t, ValidateTags([]string{"go", " "}))
	assert.Error(t, ValidateTags([]string{strings.Repeat("t", 41)}))

	many := make([]string, 11)
	for i := range many {
		many[i] = "tag"
	}
	assert.Error(t, ValidateTags(many))
}

func TestValidateCommentContent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"Valid", "Nice write-up!", false},
		{"Exactly Max Length", strings.Repeat("c", 1000), false},
		{"Empty", "", true},
		{"Whitespace Only", "  \n\t ", true},
		{"Too Long", strings.Repeat("c", 1001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommentContent(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
