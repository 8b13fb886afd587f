/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package memo implements the per-section scratch index (spec §4.B): a
// multimap from class name to the ordered sequence of typed nodes recorded
// during that section's parse, in depth-first post-order. A Memo is never
// shared across sections — the response parser (package response) creates
// one fresh Memo per section and, for recursive re-entry, threads it
// through types.ParseContext.PushMemo/SetActive per spec §5's reentrancy
// contract.
//
// Package memo 实现每个分区的草稿索引（见 §4.B）。
package memo

import "github.com/bittoy/ytparse/types"

// entry records one Add call in the exact order it happened, so GetType can
// reconstruct true insertion (post-)order across tags instead of grouping by
// tag.
type entry struct {
	tag  types.TypeTag
	node types.Node
}

// Memo is a mapping from class name to an ordered sequence of typed nodes.
// Not safe for concurrent use — spec §5 specifies single-threaded,
// cooperative scheduling, so Memo carries no internal lock, matching the
// teacher framework's preference for explicit context threading over
// ambient synchronization in single-writer structures.
type Memo struct {
	order []types.TypeTag
	byTag map[types.TypeTag][]types.Node
	flat  []entry
}

// New returns an empty Memo, ready for Add.
func New() *Memo {
	return &Memo{byTag: make(map[types.TypeTag][]types.Node)}
}

// Add implements types.ActiveMemo: records n under tag, appending to any
// existing entries for that tag. Per spec §3's memo invariant, the caller
// (the item parser) only calls Add after a constructor has returned
// successfully — Add itself performs no validation.
func (m *Memo) Add(tag types.TypeTag, n types.Node) {
	if _, ok := m.byTag[tag]; !ok {
		m.order = append(m.order, tag)
	}
	m.byTag[tag] = append(m.byTag[tag], n)
	m.flat = append(m.flat, entry{tag: tag, node: n})
}

// Get returns the raw recorded nodes for tag, in insertion order, or nil if
// none were recorded.
func (m *Memo) Get(tag types.TypeTag) []types.Node {
	return m.byTag[tag]
}

// GetType returns an ObservedArray of every recorded node whose TypeTag
// matches any of tags. Per spec §4.B ("get_type with multiple tags returns
// the union preserving insertion order") and §9 ("memo insertion order is
// the depth-first left-to-right order in which constructors finish"), the
// result follows the true global Add order across tags, not the order tags
// are named in the call or first appear.
func (m *Memo) GetType(tags ...types.TypeTag) types.ObservedArray {
	if len(tags) == 1 {
		return types.NewObservedArray(append([]types.Node(nil), m.byTag[tags[0]]...))
	}
	want := make(map[types.TypeTag]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var out []types.Node
	for _, e := range m.flat {
		if want[e.tag] {
			out = append(out, e.node)
		}
	}
	return types.NewObservedArray(out)
}

// Tags returns every class name with at least one recorded node, in
// first-insertion order.
func (m *Memo) Tags() []types.TypeTag {
	return append([]types.TypeTag(nil), m.order...)
}

// Len returns the total number of recorded nodes across all tags.
func (m *Memo) Len() int {
	n := 0
	for _, nodes := range m.byTag {
		n += len(nodes)
	}
	return n
}
