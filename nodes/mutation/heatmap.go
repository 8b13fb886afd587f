package mutation

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// MacroMarkersListEntity is the heat-map entity spec §4.H's second pass
// constructs and appends to the memo; it is never dispatched through
// ParseItem, only invoked directly by package mutation via the registry.
type MacroMarkersListEntity struct {
	common.Base
}

func newMacroMarkersListEntity(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	props := common.FlattenProps(body)
	return &MacroMarkersListEntity{Base: common.NewBase("MacroMarkersListEntity", props)}, nil
}

func init() {
	Registered.Add(types.Registration{
		Tag:   "MacroMarkersListEntity",
		New:   newMacroMarkersListEntity,
		Proto: &MacroMarkersListEntity{},
	})
}
