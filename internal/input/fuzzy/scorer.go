package fuzzy

import "unicode"

// Score bounds and the fixed policy constants.
const (
	// ScoreExact is awarded to fold-equal matches and is strictly above
	// any partial match score.
	ScoreExact = 100

	// ScoreEmptyQuery is the uniform baseline for an empty query; it is
	// independent of the candidate text.
	ScoreEmptyQuery = 50

	// scoreMaxPartial caps every non-exact match below ScoreExact.
	scoreMaxPartial = 99

	// scoreMinMatch floors every successful match above exclusion.
	scoreMinMatch = 1
)

// Scorer calculates a raw match score from matched rune positions.
// Higher is better. The matcher clamps raw scores into the partial
// range, so implementations are free to go negative or above the cap.
type Scorer interface {
	// Score receives the folded query runes, the candidate runes used
	// for boundary detection (case preserved when folding keeps the
	// rune count, otherwise the folded runes), the folded candidate
	// runes, and the matched indices into the folded text. The matched
	// indices are valid for both candidate slices.
	Score(queryRunes, originalRunes, textRunes []rune, matches []int) int
}

// Weights configures the default scoring algorithm.
type Weights struct {
	// Base is the starting score for any match.
	Base int

	// Consecutive is added for each adjacent pair of matched runes.
	Consecutive int

	// WordBoundary is added for each match at a word boundary.
	WordBoundary int

	// Prefix is added when the first match is at position 0.
	Prefix int

	// GapPenalty is subtracted per unmatched rune between the first and
	// last match.
	GapPenalty int

	// LeadingPenalty is subtracted per rune before the first match.
	LeadingPenalty int
}

// DefaultWeights returns the weights used by the palette.
func DefaultWeights() Weights {
	return Weights{
		Base:           40,
		Consecutive:    6,
		WordBoundary:   5,
		Prefix:         8,
		GapPenalty:     1,
		LeadingPenalty: 1,
	}
}

// Score implements the Scorer interface.
func (w Weights) Score(queryRunes, originalRunes, textRunes []rune, matches []int) int {
	if len(matches) == 0 {
		return 0
	}

	score := w.Base

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += w.Consecutive
		}
	}

	for _, idx := range matches {
		if isWordBoundary(originalRunes, idx) {
			score += w.WordBoundary
		}
	}

	if matches[0] == 0 {
		score += w.Prefix
	}

	if len(matches) > 1 {
		gap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		if gap > 0 {
			score -= gap * w.GapPenalty
		}
	}

	score -= matches[0] * w.LeadingPenalty

	return score
}

// isWordBoundary reports whether the rune at idx starts a word: the
// start of the string, the position after a space or punctuation
// separator, or a camelCase transition.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev, cur := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) || unicode.IsSymbol(prev) {
		return true
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return true
	}
	return false
}

// clampPartial bounds a raw score into the non-exact match range.
func clampPartial(raw int) int {
	if raw < scoreMinMatch {
		return scoreMinMatch
	}
	if raw > scoreMaxPartial {
		return scoreMaxPartial
	}
	return raw
}
