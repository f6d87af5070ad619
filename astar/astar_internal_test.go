package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOpenLess_TiesPreferLowerGScore checks the heap comparator's tie-break
// directly: when two candidates have equal f-score, the one closer to the
// source (lower g-score) must sort first, matching the no-reopen
// optimality tradeoff documented in doc.go.
func TestOpenLess_TiesPreferLowerGScore(t *testing.T) {
	lowG := openItem{node: 1, fScore: 10, gScore: 1}
	highG := openItem{node: 2, fScore: 10, gScore: 5}

	assert.True(t, openLess(lowG, highG))
	assert.False(t, openLess(highG, lowG))
}
