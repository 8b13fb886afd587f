// Package render implements the representative "poly/item parse" renderer
// classes from spec.md §4.K: the node shapes populating contents, header,
// items, metadata, playerOverlays, sidebar, microformat, overlay,
// captions, storyboards, endscreen, cards, background, alerts,
// annotations, and engagementPanels.
//
// Every class follows the teacher's component shape generalized by
// DESIGN.md: a zero-arg prototype registered at init time and a
// Constructor matching types.Constructor. Each file's init() appends to
// Registered rather than calling registry.Default directly, so draining
// into the shared registry happens once, deterministically, from
// nodes/register.go regardless of file compilation order within this
// package (mirrors the teacher's per-package local registry pattern, see
// types.SafeComponentSlice).
package render

import "github.com/bittoy/ytparse/types"

// Registered accumulates this package's class registrations.
var Registered types.SafeComponentSlice
