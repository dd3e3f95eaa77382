// Package classifier maps a raw user utterance to an intent category using
// ordered keyword membership tests. Classification is pure: the same input
// always yields the same category.
package classifier

import "strings"

// Intent is one of a fixed closed set of message categories
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentHowAreYou Intent = "how_are_you"
	IntentHelp      Intent = "help"
	IntentGoodbye   Intent = "goodbye"
	IntentThanks    Intent = "thanks"
	IntentName      Intent = "name"
	IntentDefault   Intent = "default"
)

// rules are evaluated in order; the first category with a matching keyword
// wins.
var rules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentGreeting, []string{"hello", "hi there", "hey", "good morning", "good afternoon", "good evening", "greetings"}},
	{IntentHowAreYou, []string{"how are you", "how's it going", "how is it going", "how do you do"}},
	{IntentHelp, []string{"help", "assist", "support", "what can you do"}},
	{IntentGoodbye, []string{"goodbye", "bye", "see you", "farewell", "take care"}},
	{IntentThanks, []string{"thank", "thanks", "appreciate", "grateful"}},
	{IntentName, []string{"your name", "who are you", "what are you"}},
}

// Classify returns the intent category for the given text. Matching is
// case-insensitive on the whitespace-trimmed input; no match yields
// IntentDefault.
func Classify(text string) Intent {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return IntentDefault
	}
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return rule.intent
			}
		}
	}
	return IntentDefault
}
