package stub

import (
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// Node is the synthesized node instance a stub Constructor produces. It has
// no compile-time fields; every dynamic key lives in props, snake_cased
// from the original camelCase source key per spec §4.I step 3.
type Node struct {
	tag   types.TypeTag
	props types.Properties
}

// TypeTag implements types.Node.
func (n *Node) TypeTag() types.TypeTag { return n.tag }

// Is implements types.Node.
func (n *Node) Is(tags ...types.TypeTag) bool {
	for _, t := range tags {
		if n.tag == t {
			return true
		}
	}
	return false
}

// HasKey implements types.Node.
func (n *Node) HasKey(key string) bool { return n.props.Has(key) }

// Key implements types.Node.
func (n *Node) Key(key string) (rawnode.Raw, bool) { return n.props.Get(key) }

// Category implements types.CategoryGetter, grouping every stub under a
// single tooling-visible bucket distinct from any statically known class
// category.
func (n *Node) Category() string { return "stub" }

// Desc implements types.DescGetter.
func (n *Node) Desc() string { return "runtime-synthesized class: " + string(n.tag) }
