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

// Package mutation implements the mutation engine (spec §4.H): three
// passes over framework_updates.entity_batch_update.mutations that patch
// already-parsed nodes looked up via the section memo. Dotted-path payload
// extraction (payload.musicFormBooleanChoice.id and friends) is done with
// github.com/expr-lang/expr rather than hand-rolled nested type
// assertions, the same library the rest of the example pack reaches for
// whenever a small expression needs to run against a dynamic map.
//
// Package mutation 实现变更引擎（见 §4.H）。
package mutation

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/bittoy/ytparse/memo"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// Record is one entry of framework_updates.entity_batch_update.mutations.
type Record struct {
	EntityKey string
	Payload   map[string]any
}

// LoadMutations extracts the mutations list from a full response document,
// returning (nil, false) if framework_updates.entity_batch_update.mutations
// is absent entirely — callers use the bool to distinguish "absent" from
// "present but empty" per the mutation_data_missing condition (spec §4.H).
func LoadMutations(doc rawnode.Raw) ([]Record, bool) {
	fu, ok := rawnode.Get(doc, "frameworkUpdates")
	if !ok {
		return nil, false
	}
	ebu, ok := rawnode.Get(fu, "entityBatchUpdate")
	if !ok {
		return nil, false
	}
	list, ok := rawnode.Get(ebu, "mutations")
	if !ok {
		return nil, false
	}
	items, ok := rawnode.AsList(list)
	if !ok {
		return nil, true
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		entityKey, _ := rawnode.AsString(mustGet(item, "entityKey"))
		payload, _ := rawnode.AsMap(mustGet(item, "payload"))
		out = append(out, Record{EntityKey: entityKey, Payload: payload})
	}
	return out, true
}

func mustGet(v rawnode.Raw, key string) rawnode.Raw {
	r, _ := rawnode.Get(v, key)
	return r
}

var (
	programCacheMu sync.Mutex
	programCache   = map[string]*vm.Program{}
)

// extract evaluates a dotted expr path (e.g. "payload.musicFormBooleanChoice.id")
// against env, returning (nil, false) on any compile/eval failure or a nil
// result — mutation extraction is tolerant by the same philosophy as the
// rest of this module: a malformed or absent field degrades to absent, it
// never panics the pass.
func extract(env map[string]any, path string) (any, bool) {
	programCacheMu.Lock()
	program, ok := programCache[path]
	programCacheMu.Unlock()
	if !ok {
		compiled, err := expr.Compile(path, expr.AllowUndefinedVariables())
		if err != nil {
			return nil, false
		}
		program = compiled
		programCacheMu.Lock()
		programCache[path] = program
		programCacheMu.Unlock()
	}
	out, err := expr.Run(program, env)
	if err != nil || out == nil {
		return nil, false
	}
	return out, true
}

func extractString(env map[string]any, path string) (string, bool) {
	v, ok := extract(env, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func envOf(r Record) map[string]any {
	return map[string]any{"payload": any(r.Payload), "entityKey": r.EntityKey}
}

// Run applies all three passes against memo m, using doc's mutations list
// (or reporting mutation_data_missing per-pass if it is absent and the
// memo holds affected nodes). The reporter and registry come from cfg, the
// response parser's types.Config.
func Run(pc *types.ParseContext, cfg types.Config, m *memo.Memo, doc rawnode.Raw) {
	records, present := LoadMutations(doc)

	applyMultiSelect(cfg, m, records, present)
	applyHeatMap(pc, cfg, m, records)
	applyComments(cfg, m, records, present)
}
