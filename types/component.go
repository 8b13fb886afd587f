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

package types

import "sync"

// Registration pairs a class's TypeTag with its Constructor and a
// zero-value prototype Node, ready to hand to registry.Registry.Register.
// The prototype exists purely for CategoryGetter/DescGetter introspection
// by tooling — it is never itself treated as a parsed result.
type Registration struct {
	Tag   TypeTag
	New   Constructor
	Proto Node
}

// SafeComponentSlice is a thread-safe accumulator for Registrations. Each
// nodes/... subpackage keeps one package-level instance, appended to from
// per-class init() functions, then drained once into the shared registry.
// This reproduces the teacher's per-package local registry merged into the
// global one at startup, which keeps class registration deterministic
// regardless of file compilation order within a package.
//
// SafeComponentSlice 是 Registration 的线程安全累加器。
type SafeComponentSlice struct {
	entries []Registration
	sync.Mutex
}

// Add appends one or more registrations. Safe for concurrent use, though in
// practice every caller is a package init() running before main.
//
// Add 安全地追加一个或多个注册项。
func (s *SafeComponentSlice) Add(entries ...Registration) {
	s.Lock()
	defer s.Unlock()
	s.entries = append(s.entries, entries...)
}

// Registrations returns a copy of the accumulated registrations.
//
// Registrations 返回已累积注册项的副本。
func (s *SafeComponentSlice) Registrations() []Registration {
	s.Lock()
	defer s.Unlock()
	out := make([]Registration, len(s.entries))
	copy(out, s.entries)
	return out
}
