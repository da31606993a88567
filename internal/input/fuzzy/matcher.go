package fuzzy

import (
	"sort"
	"sync"

	"golang.org/x/text/cases"
)

// Item is one searchable candidate.
type Item struct {
	// Text is the string matched against.
	Text string

	// Data is arbitrary data associated with this item.
	Data any
}

// Result is a ranked match.
type Result struct {
	// Item is the matched item.
	Item Item

	// Index is the item's registration position; score ties preserve
	// this order.
	Index int

	// Score is the bounded match score in [0, 100].
	Score int

	// Matches holds the matched rune indices into the folded text.
	Matches []int
}

// Options configures a Matcher.
type Options struct {
	// CacheSize is the maximum number of cached query results.
	// Zero disables caching.
	CacheSize int
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{CacheSize: 256}
}

// Matcher ranks a fixed item set against queries. It is safe for
// concurrent use; scoring itself is pure.
type Matcher struct {
	mu     sync.RWMutex
	items  []Item
	scorer Scorer
	cache  *Cache
}

// NewMatcher creates a matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	var cache *Cache
	if opts.CacheSize > 0 {
		cache = NewCache(opts.CacheSize)
	}
	return &Matcher{
		scorer: DefaultWeights(),
		cache:  cache,
	}
}

// SetScorer replaces the scoring algorithm and drops cached results.
func (m *Matcher) SetScorer(s Scorer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scorer = s
	if m.cache != nil {
		m.cache.Clear()
	}
}

// SetItems replaces the item set. Registration order is the order of
// the slice; it decides score ties. Cached results are invalidated.
func (m *Matcher) SetItems(items []Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make([]Item, len(items))
	copy(m.items, items)
	if m.cache != nil {
		m.cache.Clear()
	}
}

// Len returns the number of registered items.
func (m *Matcher) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Match ranks the item set against query and returns up to limit
// results, sorted by score descending with ties in registration order.
// Non-matching items are excluded. A limit <= 0 returns everything.
func (m *Matcher) Match(query string, limit int) []Result {
	folded := fold(query)

	m.mu.RLock()
	items := m.items
	scorer := m.scorer
	cache := m.cache
	m.mu.RUnlock()

	if folded == "" {
		return applyLimit(baselineResults(items), limit)
	}

	if cache != nil {
		if hit := cache.Get(folded); hit != nil {
			return applyLimit(hit, limit)
		}
	}

	queryRunes := []rune(folded)
	results := make([]Result, 0, len(items))
	for i, item := range items {
		score, matches := scoreItem(scorer, queryRunes, item.Text)
		if score > 0 {
			results = append(results, Result{
				Item:    item,
				Index:   i,
				Score:   score,
				Matches: matches,
			})
		}
	}

	// Stable sort keeps registration order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if cache != nil {
		cache.Set(folded, results)
	}

	return applyLimit(results, limit)
}

// Score is the pure scoring function: it returns the bounded score for
// query against text, or false when query is not a subsequence of text.
// Identical arguments always yield identical results.
func Score(query, text string) (int, bool) {
	if fold(query) == "" {
		return ScoreEmptyQuery, true
	}
	score, _ := scoreItem(DefaultWeights(), []rune(fold(query)), text)
	if score == 0 {
		return 0, false
	}
	return score, true
}

// scoreItem scores one candidate. Returns 0 when the query is not a
// subsequence of the folded text.
func scoreItem(scorer Scorer, queryRunes []rune, text string) (int, []int) {
	if text == "" || len(queryRunes) == 0 {
		return 0, nil
	}

	textRunes := []rune(fold(text))
	originalRunes := []rune(text)
	if len(originalRunes) != len(textRunes) {
		// Folding changed the rune count (ß expands to ss), so match
		// indices no longer line up with the original text. Boundary
		// detection falls back to the folded runes.
		originalRunes = textRunes
	}

	if runesEqual(queryRunes, textRunes) {
		return ScoreExact, sequential(len(textRunes))
	}

	// Greedy left-to-right subsequence scan over code points.
	matches := make([]int, 0, len(queryRunes))
	qi := 0
	for i := 0; i < len(textRunes) && qi < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[qi] {
			matches = append(matches, i)
			qi++
		}
	}
	if qi != len(queryRunes) {
		return 0, nil
	}

	return clampPartial(scorer.Score(queryRunes, originalRunes, textRunes, matches)), matches
}

// fold normalizes text for case-insensitive comparison using Unicode
// case folding. Casers are not safe for concurrent reuse, so one is
// created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sequential(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// baselineResults gives every item the uniform empty-query score in
// registration order.
func baselineResults(items []Item) []Result {
	results := make([]Result, len(items))
	for i, item := range items {
		results[i] = Result{Item: item, Index: i, Score: ScoreEmptyQuery}
	}
	return results
}

func applyLimit(results []Result, limit int) []Result {
	if limit <= 0 || limit >= len(results) {
		return results
	}
	return results[:limit]
}
