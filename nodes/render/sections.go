package render

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// ItemSection, SectionList, Grid, PlaylistPanel, and Shelf are container
// classes: they hold an ordered run of child items poly-parsed from one of
// a small set of candidate field names. They share one constructor shape,
// parameterized only by tag and candidate field names, since their
// upstream structure differs only in that respect.

type ItemSection struct{ common.Base }
type SectionList struct{ common.Base }
type Grid struct{ common.Base }
type PlaylistPanel struct{ common.Base }
type Shelf struct{ common.Base }

func newContainer(tag types.TypeTag, fields ...string) types.Constructor {
	return func(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
		props := common.FlattenProps(body)
		props.Put("contents", common.ParseChildren(pc, body, fields...))
		return &containerNode{Base: common.NewBase(tag, props)}, nil
	}
}

// containerNode backs every container class above; the distinct Go types
// exist only so each class gets its own registered prototype and, via
// reflect, a distinguishable zero value for tooling — the behavior is
// identical, so they all delegate to this one implementation.
type containerNode struct{ common.Base }

func init() {
	Registered.Add(
		types.Registration{Tag: "ItemSection", New: newContainer("ItemSection", "contents"), Proto: &ItemSection{}},
		types.Registration{Tag: "SectionList", New: newContainer("SectionList", "contents"), Proto: &SectionList{}},
		types.Registration{Tag: "Grid", New: newContainer("Grid", "items"), Proto: &Grid{}},
		types.Registration{Tag: "PlaylistPanel", New: newContainer("PlaylistPanel", "contents"), Proto: &PlaylistPanel{}},
		types.Registration{Tag: "Shelf", New: newContainer("Shelf", "content", "contents"), Proto: &Shelf{}},
	)
}
