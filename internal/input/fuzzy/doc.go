// Package fuzzy ranks candidate text against a query for the command
// palette.
//
// A query matches a candidate when it appears as a (not necessarily
// contiguous) subsequence of the candidate's code points after Unicode
// case folding. Scores are bounded to [0, 100]: an exact fold-equal
// match always scores 100 and strictly outranks every partial match, an
// empty query scores the constant ScoreEmptyQuery for every candidate,
// and non-matching candidates are excluded rather than scored.
//
// Scoring favors:
//   - consecutive character runs over scattered matches
//   - matches starting at word boundaries (string start, after a
//     separator, camelCase transitions)
//   - query as an exact prefix of the candidate
//
// The scorer is pure and deterministic; ranked results are sorted by
// score with ties broken by registration order, never re-randomized.
// Repeated queries hit an LRU cache that is invalidated whenever the
// item set changes.
package fuzzy
