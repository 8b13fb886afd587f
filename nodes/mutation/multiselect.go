package mutation

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// MusicMultiSelectMenuItem is a toggleable menu choice (e.g. a playlist
// "like"/"dislike" option) correlated to a mutation by form_item_entity_key
// and patched in place with the server's chosen selection state.
type MusicMultiSelectMenuItem struct {
	common.Base
}

func newMusicMultiSelectMenuItem(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	props := common.FlattenProps(body)
	return &MusicMultiSelectMenuItem{Base: common.NewBase("MusicMultiSelectMenuItem", props)}, nil
}

// FormItemEntityKey implements mutation.MultiSelectTarget.
func (n *MusicMultiSelectMenuItem) FormItemEntityKey() string {
	v, _ := n.Key("form_item_entity_key")
	s, _ := v.(string)
	return s
}

// Title implements mutation.MultiSelectTarget.
func (n *MusicMultiSelectMenuItem) Title() string {
	v, _ := n.Key("title")
	s, _ := v.(string)
	return s
}

// ApplySelection implements mutation.MultiSelectTarget, patching the node
// in place. Props is a map (reference type), so this mutation is visible
// through every other reference to this node held by a caller.
func (n *MusicMultiSelectMenuItem) ApplySelection(selected bool, opaqueToken string) {
	n.Props().Put("selected", selected)
	n.Props().Put("opaque_token", opaqueToken)
}

func init() {
	Registered.Add(types.Registration{
		Tag:   "MusicMultiSelectMenuItem",
		New:   newMusicMultiSelectMenuItem,
		Proto: &MusicMultiSelectMenuItem{},
	})
}
