package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaLabelOneBased(t *testing.T) {
	assert.Equal(t, "Media 1: clip.mp4", MediaLabel(0, "clip.mp4"))
	assert.Equal(t, "Media 3: voice.m4a", MediaLabel(2, "voice.m4a"))
}

func TestGetMediaPromptEnumeratesAllFiles(t *testing.T) {
	p := GetMediaPrompt([]string{
		MediaLabel(0, "pitch.mp4"),
		MediaLabel(1, "screenshot.png"),
	})

	assert.Contains(t, p, "Media 1: pitch.mp4")
	assert.Contains(t, p, "Media 2: screenshot.png")
	assert.Contains(t, p, "worst")
}

func TestGetContextPrompt(t *testing.T) {
	p := GetContextPrompt("He messaged me on Telegram.")
	assert.Equal(t, "Additional human context from the victim:\nHe messaged me on Telegram.", p)
}

func TestGetTextPayloadLinkOnly(t *testing.T) {
	p := GetTextPayload("https://evil.example", "")

	assert.Contains(t, p, "- Link: https://evil.example\n")
	assert.NotContains(t, p, "Text snippet")
}

func TestGetTextPayloadTextOnly(t *testing.T) {
	p := GetTextPayload("", "Guaranteed 3% daily returns!")

	assert.NotContains(t, p, "- Link:")
	assert.Contains(t, p, "- Text snippet:\nGuaranteed 3% daily returns!\n")
}

func TestGetTextPayloadBoth(t *testing.T) {
	p := GetTextPayload("https://evil.example", "act now")

	assert.Contains(t, p, "- Link: https://evil.example")
	assert.Contains(t, p, "- Text snippet:\nact now")
}
