package impl

import (
	"math"
	"strings"
	"unicode"

	"locator/internal/domain/constants"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fuzzyTolerance is the share of the query length allowed as edit distance.
const fuzzyTolerance = 0.3

// foldText lowercases s and strips combining marks ("Crème" -> "creme").
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.ToLower(folded)
}

// fuzzyMatches reports whether query is a substring of text, or within the
// edit distance tolerance of it, ignoring case and accents.
func fuzzyMatches(text, query string) bool {
	if query == "" {
		return true
	}

	t := foldText(text)
	q := foldText(query)
	if strings.Contains(t, q) {
		return true
	}

	qr := []rune(q)
	limit := max(1, int(math.Ceil(float64(len(qr))*fuzzyTolerance)))

	return levenshteinWithin(qr, []rune(t), limit) <= limit
}

// levenshteinWithin computes the edit distance of a and b, giving up with
// limit+1 as soon as every cell of a row exceeds limit.
func levenshteinWithin(a, b []rune, limit int) int {
	if abs(len(a)-len(b)) > limit {
		return limit + 1
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		rowMin := row[0]
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
			rowMin = min(rowMin, row[j])
		}
		if rowMin > limit {
			return limit + 1
		}
	}

	return row[len(b)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// restockTopic is the push topic of a flavor: the folded name with every run
// of characters outside [a-z0-9] collapsed to a dash.
func restockTopic(flavorName string) string {
	var sb strings.Builder
	sb.WriteString(constants.RestockTopicPrefix)

	dash := false
	for _, r := range foldText(flavorName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			dash = false

			continue
		}
		if !dash && sb.Len() > len(constants.RestockTopicPrefix) {
			sb.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
