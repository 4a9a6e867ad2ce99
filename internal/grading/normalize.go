package grading

import "strings"

// normalize prepares an answer for comparison: surrounding whitespace is
// dropped and the rest is lowercased. Inner whitespace is kept as is.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// answersMatch applies the same comparison to every question type.
func answersMatch(submitted, correct string) bool {
	return normalize(submitted) == normalize(correct)
}

// percentage rounds 100*correct/total half up using integer arithmetic.
func percentage(correct, total int) int {
	return (200*correct + total) / (2 * total)
}
