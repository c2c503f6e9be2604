package validation

import (
	"fmt"
	"strings"

	"inkwell/internal/models"
)

const (
	maxTitleLength   = 200
	maxSummaryLength = 500
	maxTags          = 10
	maxTagLength     = 40
)

// ValidateBlogTitle checks that a blog title is present and within bounds.
func ValidateBlogTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("title is required")
	}
	if len(trimmed) > maxTitleLength {
		return fmt.Errorf("title must not exceed %d characters", maxTitleLength)
	}
	return nil
}

// ValidateBlogSummary checks the optional summary length.
func ValidateBlogSummary(summary string) error {
	if len(summary) > maxSummaryLength {
		return fmt.Errorf("summary must not exceed %d characters", maxSummaryLength)
	}
	return nil
}

// ValidateBlogContent checks that blog content is present.
func ValidateBlogContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// ValidateBlogStatus checks the status is one of the known values.
func ValidateBlogStatus(status string) error {
	switch status {
	case models.BlogStatusDraft, models.BlogStatusPublished:
		return nil
	default:
		return fmt.Errorf("status must be %q or %q", models.BlogStatusDraft, models.BlogStatusPublished)
	}
}

// ValidateTags checks the tag list for count and per-tag length.
func ValidateTags(tags []string) error {
	if len(tags) > maxTags {
		return fmt.Errorf("a blog can have at most %d tags", maxTags)
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags cannot be empty")
		}
		if len(tag) > maxTagLength {
			return fmt.Errorf("tag %q exceeds %d characters", tag, maxTagLength)
		}
	}
	return nil
}

// ValidateCommentContent checks that comment text is present and within the
// length cap.
func ValidateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("comment content is required")
	}
	if len(trimmed) > models.MaxCommentLength {
		return fmt.Errorf("comment must not exceed %d characters", models.MaxCommentLength)
	}
	return nil
}
