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

package parser

import (
	"strings"

	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// commandSuffixes is the closed set of key-name suffixes from spec §6 that
// mark a key as dispatchable via ParseCommand.
var commandSuffixes = []string{"Command", "Endpoint", "Action"}

func isCommandKey(key string) bool {
	for _, suffix := range commandSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

// ParseCommand implements spec §4.E's parse_command: scan raw's keys in
// declared order, dispatch the first whose name ends in Command, Endpoint,
// or Action. Unlike ParseItem, a registry miss is never handed to the
// stub generator — command/endpoint/action containers multiplex many
// sibling keys, and synthesizing a stub for every unrecognized sibling
// would flood diagnostics for keys nobody asked about.
func ParseCommand(pc *types.ParseContext, raw rawnode.Raw) (types.Node, bool) {
	obj, ok := rawnode.AsObject(raw)
	if !ok {
		return nil, false
	}
	cfg := pc.Config
	for _, key := range obj.Keys() {
		if !isCommandKey(key) {
			continue
		}
		body, _ := obj.Get(key)
		className := sanitizeKey(cfg, key)
		if isIgnored(className) {
			return nil, false
		}
		ctor, found := cfg.Registry.Lookup(types.TypeTag(className))
		if !found {
			return nil, false
		}
		node, err := ctor(pc, body)
		if err != nil {
			report(cfg, types.Event{Category: types.CategoryParse, ClassName: className, Body: body, Err: err})
			return nil, false
		}
		if node == nil {
			return nil, false
		}
		if active := pc.ActiveOrNil(); active != nil {
			active.Add(node.TypeTag(), node)
		}
		return node, true
	}
	return nil, false
}

// ParseCommands implements spec §4.E's parse_commands: batch ParseCommand
// over a list, keeping only non-empty results, in source order.
func ParseCommands(pc *types.ParseContext, raw rawnode.Raw) types.ObservedArray {
	list, ok := rawnode.AsList(raw)
	if !ok {
		return types.NewObservedArray(nil)
	}
	var out []types.Node
	for _, item := range list {
		if node, ok := ParseCommand(pc, item); ok {
			out = append(out, node)
		}
	}
	return types.NewObservedArray(out)
}
