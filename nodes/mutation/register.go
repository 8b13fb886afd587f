// Package mutation implements the three node classes the mutation engine
// (package mutation) patches per spec.md §4.H: MusicMultiSelectMenuItem,
// MacroMarkersListEntity, and CommentView. Each satisfies the
// corresponding target interface in package mutation's targets.go
// structurally — no import of that package is needed here, only the
// matching method set.
package mutation

import "github.com/bittoy/ytparse/types"

// Registered accumulates this package's class registrations.
var Registered types.SafeComponentSlice
