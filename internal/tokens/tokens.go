// Package tokens provides approximate token accounting.
package tokens

import "strings"

// Estimate counts whitespace-delimited words in text. This is a documented
// approximation standing in for a real subword tokenizer; empty or
// whitespace-only text yields 0.
func Estimate(text string) int {
	return len(strings.Fields(text))
}
