package render

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// Video is the videoRenderer class: a single video's list-item
// presentation (title, thumbnail, length, view count, ...).
type Video struct {
	common.Base
}

func newVideo(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	props := common.FlattenProps(body)
	common.WithTargetID(props, body, "videoId")
	if title, ok := common.ProjectText(body, "title"); ok {
		props.Put("title_text", title)
	}
	return &Video{Base: common.NewBase("Video", props)}, nil
}

func init() {
	Registered.Add(types.Registration{Tag: "Video", New: newVideo, Proto: &Video{}})
}
