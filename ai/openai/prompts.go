package openai

import (
	"fmt"
	"strings"
)

// buildSystemPrompt renders the zero-shot classification instructions for
// the offered label set.
func buildSystemPrompt(labels []string) string {
	var b strings.Builder
	b.WriteString("You are a zero-shot text classifier for a corporate assistant. ")
	b.WriteString("The user message may be in Russian or English. ")
	b.WriteString("Score how well the message matches each candidate label.\n\n")
	b.WriteString("Candidate labels:\n")
	for _, label := range labels {
		fmt.Fprintf(&b, "- %s\n", label)
	}
	b.WriteString("\nRespond with JSON only, no prose, in this exact shape:\n")
	b.WriteString(`{"scores": [{"label": "<label>", "score": <number between 0 and 1>}]}`)
	b.WriteString("\nInclude every candidate label exactly once, copied verbatim.")
	return b.String()
}
