package mutation

import (
	"github.com/bittoy/ytparse/nodes/common"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// CommentView is a single rendered comment, correlated across four
// mutation records (comment body, toolbar state, toolbar surface,
// comment surface) by the keys captured at construction time.
type CommentView struct {
	common.Base
}

func newCommentView(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	props := common.FlattenProps(body)
	return &CommentView{Base: common.NewBase("CommentView", props)}, nil
}

func stringKey(n *CommentView, key string) string {
	v, _ := n.Key(key)
	s, _ := v.(string)
	return s
}

// CommentKey implements mutation.CommentTarget.
func (n *CommentView) CommentKey() string { return stringKey(n, "comment_key") }

// ToolbarStateKey implements mutation.CommentTarget.
func (n *CommentView) ToolbarStateKey() string { return stringKey(n, "toolbar_state_key") }

// ToolbarSurfaceKey implements mutation.CommentTarget.
func (n *CommentView) ToolbarSurfaceKey() string { return stringKey(n, "toolbar_surface_key") }

// CommentSurfaceKey implements mutation.CommentTarget.
func (n *CommentView) CommentSurfaceKey() string { return stringKey(n, "comment_surface_key") }

// ApplyMutations implements mutation.CommentTarget, patching the node in
// place; any argument may be nil when its mutation record was not found.
func (n *CommentView) ApplyMutations(comment, toolbarState, toolbarSurface, commentSurface rawnode.Raw) {
	n.Props().Put("comment", comment)
	n.Props().Put("toolbar_state", toolbarState)
	n.Props().Put("toolbar_surface", toolbarSurface)
	n.Props().Put("comment_surface", commentSurface)
}

func init() {
	Registered.Add(types.Registration{
		Tag:   "CommentView",
		New:   newCommentView,
		Proto: &CommentView{},
	})
}
