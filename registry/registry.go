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

// Package registry implements the node registry (spec §4.A): a mapping
// from sanitized class name to the Constructor that turns a raw node body
// into a typed node instance, generalized from the teacher framework's
// RuleComponentRegistry (engine/registry.go) from a NodeType-keyed,
// register-once table to one that also accepts runtime-synthesized
// entries from the stub generator (package stub) without disturbing the
// statically-known ones.
//
// Package registry 实现节点注册表（见 §4.A）。
package registry

import (
	"fmt"
	"sync"

	"github.com/bittoy/ytparse/types"
)

// Registry holds the full runtime-visible class table plus, separately,
// the subset of entries added at runtime by the stub generator — mirroring
// spec §4.A's "two maps" requirement so tooling can query DynamicEntries
// without walking the whole table.
type Registry struct {
	mu        sync.RWMutex
	all       map[types.TypeTag]types.Constructor
	protos    map[types.TypeTag]types.Node
	dynamic   map[types.TypeTag]bool
	dynOrder  []types.TypeTag
}

// New returns an empty Registry. Most callers use Default instead.
func New() *Registry {
	return &Registry{
		all:     make(map[types.TypeTag]types.Constructor),
		protos:  make(map[types.TypeTag]types.Node),
		dynamic: make(map[types.TypeTag]bool),
	}
}

// Default is the process-wide registry populated at init time by every
// nodes/... subpackage, per spec §5's "registry ... process-wide mutable
// singleton, configured at startup and effectively read-only during
// parsing" rule.
var Default = New()

// Register adds a statically-known class, returning an error on a duplicate
// tag — mirroring the teacher's RuleComponentRegistry.Register, which
// returns an error for the same case rather than panicking (spec §7: hard
// conditions are Go errors, never panics). This only runs from package
// init() functions, so a collision is a programmer error at startup; callers
// that cannot do anything useful with it at init time are free to discard it,
// the same way the teacher's own bootstrap code does.
func (r *Registry) Register(tag types.TypeTag, ctor types.Constructor, proto types.Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.all[tag]; ok {
		return fmt.Errorf("registry: class already registered: %s", tag)
	}
	r.all[tag] = ctor
	r.protos[tag] = proto
	return nil
}

// RegisterAll drains a types.SafeComponentSlice's accumulated
// Registrations into r, in the order they were added, stopping at and
// returning the first duplicate-registration error.
func (r *Registry) RegisterAll(entries []types.Registration) error {
	for _, e := range entries {
		if err := r.Register(e.Tag, e.New, e.Proto); err != nil {
			return err
		}
	}
	return nil
}

// Lookup implements types.Registry.
func (r *Registry) Lookup(tag types.TypeTag) (types.Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.all[tag]
	return ctor, ok
}

// Has implements types.Registry.
func (r *Registry) Has(tag types.TypeTag) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.all[tag]
	return ok
}

// AddRuntime implements types.Registry. It is the sole write path during
// parsing (spec §5) — append-only, never overwriting a statically known
// class. A second AddRuntime for the same tag (the stub generator's
// class_changed path) replaces the constructor and prototype but keeps the
// tag's position in DynamicEntries order.
func (r *Registry) AddRuntime(tag types.TypeTag, ctor types.Constructor, proto types.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, static := r.all[tag]; static && !r.dynamic[tag] {
		return
	}
	if !r.dynamic[tag] {
		r.dynamic[tag] = true
		r.dynOrder = append(r.dynOrder, tag)
	}
	r.all[tag] = ctor
	r.protos[tag] = proto
}

// DynamicEntries implements types.Registry, returning every runtime
// registered (tag, prototype) pair in first-registration order.
func (r *Registry) DynamicEntries() []types.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.Registration, 0, len(r.dynOrder))
	for _, tag := range r.dynOrder {
		out = append(out, types.Registration{Tag: tag, New: r.all[tag], Proto: r.protos[tag]})
	}
	return out
}

// LookupOrError implements spec §7's hard condition (ii): an explicit
// registry lookup by name for an unknown class, reserved for callers asking
// for a name directly rather than the tolerant item parser. It returns an
// error instead of panicking, matching §7's "hard conditions are Go errors,
// never panics" rule.
func (r *Registry) LookupOrError(tag types.TypeTag) (types.Constructor, error) {
	ctor, ok := r.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("registry: unknown class requested directly: %s", tag)
	}
	return ctor, nil
}
