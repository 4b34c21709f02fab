package utils

import (
	"strings"
	"unicode"
)

// SanitizeText collapses every whitespace run to a single space, trims the
// ends and cuts the result to maxLength code points. NUL bytes are dropped.
func SanitizeText(raw string, maxLength int) string {
	collapsed := strings.Join(strings.Fields(StripNUL(raw)), " ")
	return strings.TrimRightFunc(truncate(collapsed, maxLength), unicode.IsSpace)
}

// SanitizeMarkdown only trims and truncates. Line breaks carry meaning in
// markdown so inner whitespace is kept as is.
func SanitizeMarkdown(raw string, maxLength int) string {
	return strings.TrimSpace(truncate(strings.TrimSpace(StripNUL(raw)), maxLength))
}

// StripNUL removes U+0000, which PostgreSQL refuses to store in text columns.
func StripNUL(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// SanitizeList sanitizes each item as text, drops the ones left empty and
// keeps at most maxItems. The result is never nil.
func SanitizeList(items []string, itemMaxLength, maxItems int) []string {
	out := make([]string, 0, min(len(items), maxItems))
	for _, item := range items {
		if len(out) == maxItems {
			break
		}
		if s := SanitizeText(item, itemMaxLength); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// OrDefault returns fallback when s is empty.
func OrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncate(s string, maxLength int) string {
	if maxLength < 0 {
		return s
	}
	n := 0
	for i := range s {
		if n == maxLength {
			return s[:i]
		}
		n++
	}
	return s
}
