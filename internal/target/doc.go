// Package target provides the per-frame registry of selectable UI targets.
//
// Hosts clear the registry at the start of every frame, register targets
// during their draw pass, and seal it before input is dispatched. Hint
// generation always works from a snapshot of the sealed frame, so stale
// targets from a previous frame are never visible to selection logic.
package target
