// Package fallback selects canned replies for classified intents. The pick
// within a category is uniformly random, which is the one source of
// nondeterminism in the service; tests inject a seeded source and assert
// membership rather than exact values.
package fallback

import (
	"math/rand"
	"time"

	"github.com/aichatops/mockgpt/internal/classifier"
)

var replies = map[classifier.Intent][]string{
	classifier.IntentGreeting: {
		"Hello! How can I help you today?",
		"Hi there! What can I do for you?",
		"Hey! Nice to hear from you. What's on your mind?",
	},
	classifier.IntentHowAreYou: {
		"I'm doing well, thanks for asking! How can I help?",
		"All systems running smoothly. What can I do for you?",
		"I'm great! Ready to help with whatever you need.",
	},
	classifier.IntentHelp: {
		"I can answer questions, chat, or just keep you company. What do you need?",
		"Sure, I'm here to help. Tell me more about what you're looking for.",
		"Happy to assist! Describe what you need and I'll do my best.",
	},
	classifier.IntentGoodbye: {
		"Goodbye! Have a great day!",
		"See you later! Feel free to come back anytime.",
		"Take care! It was nice chatting with you.",
	},
	classifier.IntentThanks: {
		"You're welcome!",
		"Happy to help!",
		"Anytime! Let me know if there's anything else.",
	},
	classifier.IntentName: {
		"I'm a friendly chat assistant.",
		"You can call me the chat assistant. What's on your mind?",
		"I'm an AI assistant here to answer your questions.",
	},
	classifier.IntentDefault: {
		"That's interesting! Tell me more.",
		"I see. Could you elaborate on that?",
		"Hmm, let me think about that. What else would you like to know?",
		"I'm not entirely sure about that, but I'm happy to chat about it.",
		"Good question! Can you give me a bit more context?",
		"Let's explore that together. What specifically interests you?",
	},
}

// Responder picks canned replies for intent categories
type Responder struct {
	rng *rand.Rand
}

// NewResponder creates a responder drawing from the given random source.
// Passing nil seeds a source from the current time for production use.
func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

// Reply returns a uniformly-random candidate for the category. Unknown
// categories fall back to the default list.
func (r *Responder) Reply(intent classifier.Intent) string {
	candidates, ok := replies[intent]
	if !ok || len(candidates) == 0 {
		candidates = replies[classifier.IntentDefault]
	}
	return candidates[r.rng.Intn(len(candidates))]
}

// Candidates returns the configured candidate set for a category. Exposed so
// tests can assert membership without duplicating the table.
func Candidates(intent classifier.Intent) []string {
	candidates, ok := replies[intent]
	if !ok {
		return replies[classifier.IntentDefault]
	}
	return candidates
}
