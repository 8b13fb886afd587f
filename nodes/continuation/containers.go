package continuation

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// The nine classes parser/continuation.go's continuationContainers maps
// to. ItemSectionContinuation, SectionListContinuation, GridContinuation,
// PlaylistPanelContinuation, MusicPlaylistShelfContinuation, and
// MusicShelfContinuation carry a run of child items under
// continuationItems; TimedContinuation, LiveChatContinuation, and
// ContinuationCommand are leaf wrappers with no further recursion in this
// representative slice.

type TimedContinuation struct{ common.Base }
type ItemSectionContinuation struct{ common.Base }
type SectionListContinuation struct{ common.Base }
type LiveChatContinuation struct{ common.Base }
type MusicPlaylistShelfContinuation struct{ common.Base }
type MusicShelfContinuation struct{ common.Base }
type GridContinuation struct{ common.Base }
type PlaylistPanelContinuation struct{ common.Base }
type ContinuationCommand struct{ common.Base }

func newContinuationContainer(tag types.TypeTag) types.Constructor {
	return func(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
		props := common.FlattenProps(body)
		props.Put("continuationItems", common.ParseChildren(pc, body, "continuationItems", "items", "contents"))
		return &containerNode{Base: common.NewBase(tag, props)}, nil
	}
}

func newContinuationLeaf(tag types.TypeTag) types.Constructor {
	return func(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
		return &leafNode{Base: common.NewBase(tag, common.FlattenProps(body))}, nil
	}
}

// containerNode and leafNode back every class above; see
// nodes/render/sections.go's containerNode doc comment for why one
// implementation backs several distinct Go types.
type containerNode struct{ common.Base }
type leafNode struct{ common.Base }

func init() {
	Registered.Add(
		types.Registration{Tag: "TimedContinuation", New: newContinuationLeaf("TimedContinuation"), Proto: &TimedContinuation{}},
		types.Registration{Tag: "ItemSectionContinuation", New: newContinuationContainer("ItemSectionContinuation"), Proto: &ItemSectionContinuation{}},
		types.Registration{Tag: "SectionListContinuation", New: newContinuationContainer("SectionListContinuation"), Proto: &SectionListContinuation{}},
		types.Registration{Tag: "LiveChatContinuation", New: newContinuationLeaf("LiveChatContinuation"), Proto: &LiveChatContinuation{}},
		types.Registration{Tag: "MusicPlaylistShelfContinuation", New: newContinuationContainer("MusicPlaylistShelfContinuation"), Proto: &MusicPlaylistShelfContinuation{}},
		types.Registration{Tag: "MusicShelfContinuation", New: newContinuationContainer("MusicShelfContinuation"), Proto: &MusicShelfContinuation{}},
		types.Registration{Tag: "GridContinuation", New: newContinuationContainer("GridContinuation"), Proto: &GridContinuation{}},
		types.Registration{Tag: "PlaylistPanelContinuation", New: newContinuationContainer("PlaylistPanelContinuation"), Proto: &PlaylistPanelContinuation{}},
		types.Registration{Tag: "ContinuationCommand", New: newContinuationLeaf("ContinuationCommand"), Proto: &ContinuationCommand{}},
	)
}
