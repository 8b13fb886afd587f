package render

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// MusicMixShelf is the musicRadioShelfRenderer class. Its raw key
// sanitizes to "MusicMixShelf" (spec §4.C's Radio->Mix alias, applied
// after the Renderer suffix is stripped) — the registered tag here must
// match that, not the upstream "Radio" name.
type MusicMixShelf struct {
	common.Base
}

func newMusicMixShelf(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	props := common.FlattenProps(body)
	contents := common.ParseChildren(pc, body, "contents")
	props.Put("contents", contents)
	return &MusicMixShelf{Base: common.NewBase("MusicMixShelf", props)}, nil
}

func init() {
	Registered.Add(types.Registration{Tag: "MusicMixShelf", New: newMusicMixShelf, Proto: &MusicMixShelf{}})
}
