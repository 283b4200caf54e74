package util

import (
	"fmt"
	"strings"
)

// PeopleText formats a headcount for display, e.g. "3 Persons Assigned"
func PeopleText(n int) string {
	suffix := "s"
	if n == 1 {
		suffix = ""
	}
	return fmt.Sprintf("%d Person%s Assigned", n, suffix)
}

// Truncate shortens s to at most width runes, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// IsUUID checks if a string is a valid UUID
func IsUUID(str string) bool {
	// Simple UUID check - this is not a comprehensive validation
	// but will help differentiate between titles and identifiers
	if len(str) != 36 {
		return false
	}

	// Check for UUID format (8-4-4-4-12 pattern with hyphens)
	sections := []int{8, 4, 4, 4, 12}
	parts := strings.Split(str, "-")
	if len(parts) != 5 {
		return false
	}

	for i, length := range sections {
		if len(parts[i]) != length {
			return false
		}
	}

	return true
}
