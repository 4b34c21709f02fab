package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goodways/goodways/shared/domain"
)

const (
	MaxTitleLength   = 140
	MaxSummaryLength = 280
	MaxContentLength = 10_000
	MaxAuthorLength  = 80
	MaxMoodLength    = 80
	MaxColorLength   = 20
	MaxPaletteSize   = 6
	MaxTagLength     = 30
	MaxTags          = 8
	MaxCommentLength = 2000
)

var mediaUrlRegex = regexp.MustCompile(`(?i)^https?://`)

// ValidatePost checks a raw post draft. Rules are independent, so every
// failing rule contributes a message. An empty result means valid.
func ValidatePost(draft domain.PostDraft) []string {
	var errs []string
	if isBlank(draft.Title) {
		errs = append(errs, MsgTitleRequired)
	}
	if utf8.RuneCountInString(draft.Title) > MaxTitleLength {
		errs = append(errs, MsgTitleTooLong)
	}
	if utf8.RuneCountInString(draft.Summary) > MaxSummaryLength {
		errs = append(errs, MsgSummaryTooLong)
	}
	if draft.MediaUrl != "" && !mediaUrlRegex.MatchString(draft.MediaUrl) {
		errs = append(errs, MsgMediaUrlScheme)
	}
	return errs
}

// ValidateComment checks a raw comment draft.
func ValidateComment(draft domain.CommentDraft) []string {
	var errs []string
	if isBlank(draft.Content) {
		errs = append(errs, MsgCommentRequired)
	}
	if utf8.RuneCountInString(draft.Content) > MaxCommentLength {
		errs = append(errs, MsgCommentTooLong)
	}
	return errs
}

// isBlank treats NUL bytes like whitespace; the sanitizer drops them.
func isBlank(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool { return r == 0 || unicode.IsSpace(r) }) == ""
}
