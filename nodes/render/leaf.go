package render

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// The remaining representative render classes from spec.md §4.K are leaf
// wrappers: header/metadata/playerOverlays/sidebar/microformat/overlay/
// captions/storyboards/endscreen/cards/background/alerts/annotations/
// engagementPanels sections project their wrapper body's fields directly,
// with no further recursive child parsing (unlike the container classes in
// sections.go). One constructor shape, parameterized by tag, covers all of
// them.

type Header struct{ common.Base }
type Metadata struct{ common.Base }
type PlayerOverlay struct{ common.Base }
type Sidebar struct{ common.Base }
type Microformat struct{ common.Base }
type Overlay struct{ common.Base }
type Captions struct{ common.Base }
type Storyboards struct{ common.Base }
type Endscreen struct{ common.Base }
type Cards struct{ common.Base }
type Background struct{ common.Base }
type Alert struct{ common.Base }
type Annotation struct{ common.Base }
type EngagementPanel struct{ common.Base }

func newLeaf(tag types.TypeTag) types.Constructor {
	return func(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
		return &leafNode{Base: common.NewBase(tag, common.FlattenProps(body))}, nil
	}
}

// leafNode backs every leaf class above; see containerNode's doc comment
// in sections.go for why one implementation backs several Go types.
type leafNode struct{ common.Base }

func init() {
	Registered.Add(
		types.Registration{Tag: "Header", New: newLeaf("Header"), Proto: &Header{}},
		types.Registration{Tag: "Metadata", New: newLeaf("Metadata"), Proto: &Metadata{}},
		types.Registration{Tag: "PlayerOverlay", New: newLeaf("PlayerOverlay"), Proto: &PlayerOverlay{}},
		types.Registration{Tag: "Sidebar", New: newLeaf("Sidebar"), Proto: &Sidebar{}},
		types.Registration{Tag: "Microformat", New: newLeaf("Microformat"), Proto: &Microformat{}},
		types.Registration{Tag: "Overlay", New: newLeaf("Overlay"), Proto: &Overlay{}},
		types.Registration{Tag: "Captions", New: newLeaf("Captions"), Proto: &Captions{}},
		types.Registration{Tag: "Storyboards", New: newLeaf("Storyboards"), Proto: &Storyboards{}},
		types.Registration{Tag: "Endscreen", New: newLeaf("Endscreen"), Proto: &Endscreen{}},
		types.Registration{Tag: "Cards", New: newLeaf("Cards"), Proto: &Cards{}},
		types.Registration{Tag: "Background", New: newLeaf("Background"), Proto: &Background{}},
		types.Registration{Tag: "Alert", New: newLeaf("Alert"), Proto: &Alert{}},
		types.Registration{Tag: "Annotation", New: newLeaf("Annotation"), Proto: &Annotation{}},
		types.Registration{Tag: "EngagementPanel", New: newLeaf("EngagementPanel"), Proto: &EngagementPanel{}},
	)
}
