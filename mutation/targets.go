package mutation

import (
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// MultiSelectTarget is implemented by the MusicMultiSelectMenuItem node
// class (package nodes/mutation). ApplySelection is called at most once per
// node, for the first mutation record matching FormItemEntityKey that
// carries both a selected state and an opaque token.
type MultiSelectTarget interface {
	types.Node
	FormItemEntityKey() string
	Title() string
	ApplySelection(selected bool, opaqueToken string)
}

// CommentTarget is implemented by the CommentView node class. Any of the
// four ApplyMutations arguments may be nil if its corresponding mutation
// record was not found — per the Open Question in spec.md §9, this pass
// runs even when none of the four are found and emits no event for that
// case.
type CommentTarget interface {
	types.Node
	CommentKey() string
	ToolbarStateKey() string
	ToolbarSurfaceKey() string
	CommentSurfaceKey() string
	ApplyMutations(comment, toolbarState, toolbarSurface, commentSurface rawnode.Raw)
}
