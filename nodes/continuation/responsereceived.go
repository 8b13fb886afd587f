package continuation

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// Four of the five response_received classes from spec.md §4.K. Each is
// dispatched through the command/endpoint/action parser (§4.E), not the
// continuation container map, so its registered tag is the full
// Renderer/Model-stripped-but-suffix-preserving sanitized name (see
// parser/continuation.go's responseReceivedTags doc comment) rather than a
// bare class name.
type NavigateAction struct{ common.Base }
type ShowMiniplayerCommand struct{ common.Base }
type ReloadContinuationItemsCommand struct{ common.Base }
type OpenPopupAction struct{ common.Base }

func newResponseReceivedLeaf(tag types.TypeTag) types.Constructor {
	return func(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
		return &leafNode{Base: common.NewBase(tag, common.FlattenProps(body))}, nil
	}
}

func init() {
	Registered.Add(
		types.Registration{Tag: "NavigateAction", New: newResponseReceivedLeaf("NavigateAction"), Proto: &NavigateAction{}},
		types.Registration{Tag: "ShowMiniplayerCommand", New: newResponseReceivedLeaf("ShowMiniplayerCommand"), Proto: &ShowMiniplayerCommand{}},
		types.Registration{Tag: "ReloadContinuationItemsCommand", New: newResponseReceivedLeaf("ReloadContinuationItemsCommand"), Proto: &ReloadContinuationItemsCommand{}},
		types.Registration{Tag: "OpenPopupAction", New: newResponseReceivedLeaf("OpenPopupAction"), Proto: &OpenPopupAction{}},
	)
}
