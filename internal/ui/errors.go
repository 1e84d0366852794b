package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
	minErrorWidth  = 10
)

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of maxWidth,
// counting the "Error: " prefix on the first line. Overflow ends with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	lineWidth := max(minErrorWidth, maxWidth)
	firstWidth := max(minErrorWidth, maxWidth-utf8.RuneCountInString(errorPrefix))

	var lines []string
	var current []string
	currentLen := 0
	limit := firstWidth
	truncated := false

	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if currentLen > 0 && currentLen+1+wordLen > limit {
			lines = append(lines, strings.Join(current, " "))
			current, currentLen = nil, 0
			limit = lineWidth
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
		}
		if currentLen > 0 {
			currentLen++
		}
		current = append(current, word)
		currentLen += wordLen
	}
	if len(current) > 0 && len(lines) < maxErrorLines {
		lines = append(lines, strings.Join(current, " "))
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := lineWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
