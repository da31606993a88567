// Package hint assigns keyboard hint labels to targets and matches
// typed characters against them.
//
// The generator produces a prefix-free set of minimal-length labels over
// a configured alphabet, biased so the most important targets receive
// the shortest labels. Prefix-freedom is what makes progressive matching
// unambiguous: typing a complete label can never leave a longer label
// still reachable.
//
// The matcher is a two-state machine (Idle, Collecting) that consumes
// one character per keystroke, narrows the candidate set, and reports
// activation, rejection, or cancellation. All operations are synchronous
// and complete in well under a frame interval for thousands of targets.
package hint
