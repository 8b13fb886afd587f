// Package command implements the representative *Command/*Endpoint/*Action
// classes from spec.md §4.K that exercise the command/endpoint/action
// parser (§4.E): NavigationEndpoint and SignalAction, plus
// AppendContinuationItemsAction, shared with parser/continuation.go's
// onResponseReceived filter (see its doc comment).
package command

import "github.com/bittoy/ytparse/types"

// Registered accumulates this package's class registrations.
var Registered types.SafeComponentSlice
