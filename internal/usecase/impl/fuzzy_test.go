package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldText(t *testing.T) {
	assert.Equal(t, "creme brulee", foldText("Crème Brûlée"))
	assert.Equal(t, "nocciola", foldText("NOCCIOLA"))
}

func TestLevenshteinWithin(t *testing.T) {
	assert.Equal(t, 0, levenshteinWithin([]rune("gelato"), []rune("gelato"), 2))
	assert.Equal(t, 1, levenshteinWithin([]rune("gelato"), []rune("gelati"), 2))
	assert.Equal(t, 2, levenshteinWithin([]rune("pistahce"), []rune("pistache"), 3))
	// Length gap alone exceeds the limit.
	assert.Equal(t, 3, levenshteinWithin([]rune("a"), []rune("abcdef"), 2))
}

func TestFuzzyMatches(t *testing.T) {
	assert.True(t, fuzzyMatches("Stracciatella", ""))
	assert.True(t, fuzzyMatches("Stracciatella", "ciat"))
	assert.True(t, fuzzyMatches("Stracciatella", "stracciatela"))
	assert.False(t, fuzzyMatches("Stracciatella", "vanilla"))
	assert.True(t, fuzzyMatches("Mûre", "mure"))
}

func TestRestockTopic(t *testing.T) {
	assert.Equal(t, "flavor-creme-brulee", restockTopic("Crème brûlée"))
	assert.Equal(t, "flavor-cookies-cream", restockTopic("Cookies & Cream!"))
	assert.Equal(t, "flavor-matcha", restockTopic("  Matcha  "))
}
