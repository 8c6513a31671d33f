package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageFromKnownSet(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Contains(t, forensicMessages, Message())
	}
}

func TestTipFromKnownSet(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Contains(t, forensicTips, Tip())
	}
}
