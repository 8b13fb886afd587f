// Package continuation implements the representative continuation-shape
// classes from spec.md §4.K: the nine continuation-container classes
// parser/continuation.go's continuationContainers dispatches to, plus four
// of the five response_received classes (the fifth,
// AppendContinuationItemsAction, is a *Action-suffixed command class
// registered once in nodes/command and shared by both dispatch paths —
// see parser/continuation.go's responseReceivedTags doc comment).
package continuation

import "github.com/bittoy/ytparse/types"

// Registered accumulates this package's class registrations.
var Registered types.SafeComponentSlice
