package prompt

import (
	"fmt"
	"strings"
)

// MediaLabel formats the numbered label for one uploaded asset. Labels are
// 1-based so the model can reference "Media 2" back to the user.
func MediaLabel(idx int, filename string) string {
	return fmt.Sprintf("Media %d: %s", idx+1, filename)
}

// GetMediaPrompt builds the instructional prompt for a batch of media files.
// Every asset is enumerated by index and filename so the model weighs the
// whole batch, not just the first item.
func GetMediaPrompt(labels []string) string {
	return fmt.Sprintf(`You are analyzing potentially deceptive media (video, images, and/or audio files).
Below is a numbered list of the media assets provided in this batch:
%s

Use **all** of these media assets together with the optional context notes to detect scams, fraud, or deepfake-like behavior. If different assets show different risk levels, explain that clearly and base the overall deception score on the **worst** (most dangerous) case.
Pay close attention to:
- voice consistency, unnatural edits, and lip-sync issues
- visual or stylistic artifacts that suggest manipulation
- pressure tactics, urgency, or emotional manipulation
- financial promises, crypto or investment schemes
- identity claims, credentials, or impersonation cues
Return a single structured JSON analysis that reflects the entire batch of media.`,
		strings.Join(labels, "\n"))
}

// GetContextPrompt wraps the user's free-text notes for the media path.
func GetContextPrompt(notes string) string {
	return "Additional human context from the victim:\n" + notes
}

// GetTextPrompt is the instructional prompt for the link/text path.
func GetTextPrompt() string {
	return strings.Join([]string{
		"You are analyzing potentially deceptive online content (link and/or text).",
		"Investigate for:",
		"- phishing, account takeover, credential harvesting",
		"- fake technical support or refund scams",
		"- crypto / investment fraud and Ponzi patterns",
		"- romance scams, giveaway scams, and deepfake-assisted grifts",
		"Cross-check key claims with web search where useful.",
		"Return a structured JSON analysis that matches the configured schema.",
	}, "\n")
}

// GetTextPayload builds the artifacts block for the link/text path. Lines are
// emitted only for fields the user actually provided.
func GetTextPayload(link, text string) string {
	var b strings.Builder
	b.WriteString("User-provided artifacts:\n")
	if link != "" {
		fmt.Fprintf(&b, "- Link: %s\n", link)
	}
	if text != "" {
		fmt.Fprintf(&b, "- Text snippet:\n%s\n", text)
	}
	return b.String()
}
