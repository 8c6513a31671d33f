package status

import "math/rand"

// Rotating in-progress lines shown while the blocking model call runs. Pure
// perceived-latency UX; no effect on the request itself.
var forensicMessages = []string{
	"🔍 Scanning metadata for deepfake artifacts...",
	"🧠 Analyzing logical consistency of financial claims...",
	"🌐 Cross-referencing entities with global scam databases...",
	"💻 Executing math verification in a sandbox...",
	"⚖️ Evaluating social engineering tactics...",
	"🔎 Identifying suspicious domain registrations...",
	"📡 Checking historical context via Google Search...",
}

var forensicTips = []string{
	"Most scams use false urgency to stop you from thinking logically.",
	"If a crypto return is > 1% daily, it is almost certainly a Ponzi scheme.",
	"Legitimate CEOs almost never use a free webmail address for wire instructions.",
	"Scammers often ask you to move conversations off-platform to avoid moderation.",
}

// Message returns one rotating status line.
func Message() string {
	return forensicMessages[rand.Intn(len(forensicMessages))]
}

// Tip returns one forensic safety tip.
func Tip() string {
	return forensicTips[rand.Intn(len(forensicTips))]
}
