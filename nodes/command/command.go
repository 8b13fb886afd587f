package command

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// NavigationEndpoint carries a browse/watch target plus the click-tracking
// params every command/endpoint/action wrapper is keyed alongside.
type NavigationEndpoint struct{ common.Base }

// SignalAction is a bare signal-only action (no payload beyond its
// signal name).
type SignalAction struct{ common.Base }

// AppendContinuationItemsAction appends a run of items to an existing
// section identified by targetId; it is dispatched both directly via
// ParseCommand (§4.E) and, filtered by tag, via
// parser.ParseResponseReceived (§4.F) — one registered class, two callers.
type AppendContinuationItemsAction struct{ common.Base }

func newNavigationEndpoint(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	props := common.FlattenProps(body)
	common.WithTargetID(props, body, "videoId", "browseId", "playlistId")
	return &leafNode{Base: common.NewBase("NavigationEndpoint", props)}, nil
}

func newSignalAction(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	return &leafNode{Base: common.NewBase("SignalAction", common.FlattenProps(body))}, nil
}

func newAppendContinuationItemsAction(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	props := common.FlattenProps(body)
	common.WithTargetID(props, body, "targetId")
	props.Put("continuationItems", common.ParseChildren(pc, body, "continuationItems"))
	return &leafNode{Base: common.NewBase("AppendContinuationItemsAction", props)}, nil
}

// leafNode backs every class above; see nodes/render/sections.go's
// containerNode doc comment for why one implementation backs several
// distinct Go types.
type leafNode struct{ common.Base }

func init() {
	Registered.Add(
		types.Registration{Tag: "NavigationEndpoint", New: newNavigationEndpoint, Proto: &NavigationEndpoint{}},
		types.Registration{Tag: "SignalAction", New: newSignalAction, Proto: &SignalAction{}},
		types.Registration{Tag: "AppendContinuationItemsAction", New: newAppendContinuationItemsAction, Proto: &AppendContinuationItemsAction{}},
	)
}
