package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampScore(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{42.4, 42},
		{42.5, 43},
		{100, 100},
		{187.6, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampScore(tc.in), "ClampScore(%v)", tc.in)
	}
}
