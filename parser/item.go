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

// Package parser implements the item/array/poly parser (spec §4.D), the
// command/endpoint/action parser (§4.E, in command.go) and the
// continuation dispatcher (§4.F, in continuation.go). This is the
// recursive core every node constructor calls back into for its nested
// fields, generalizing the teacher framework's node-execution dispatch
// (engine/rule_context.go's onMsg routing through the component registry)
// to this domain's tree-shaped, single-key-wrapper documents.
//
// Package parser 实现条目/数组/多态解析器（§4.D）。
package parser

import (
	"errors"
	"time"

	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/stub"
	"github.com/bittoy/ytparse/types"
)

// ErrExpectedArray is the hard condition from spec §7(i): ParseArray/Parse
// with requireArray was handed a single wrapper instead of a list.
var ErrExpectedArray = errors.New("parser: expected array, got single wrapper")

// recurser is handed to the stub generator so a synthesized constructor can
// recurse back into ParseItem/ParseArray for nested wrappers/arrays,
// without package stub importing package parser (which would cycle, since
// ParseItem itself calls stub.Synthesize on a registry miss).
var recurser = stub.Recurser{
	ParseItem:  ParseItem,
	ParseArray: ParseArray,
}

// ParseItem implements spec §4.D's parse_item. raw must be a wrapper (a
// rawnode.Object) or an absent/empty value; allowed, if non-empty,
// restricts the dispatched type_tag. Never returns an error: every failure
// mode degrades to (nil, false) plus a reporter event.
func ParseItem(pc *types.ParseContext, raw rawnode.Raw, allowed ...types.TypeTag) (types.Node, bool) {
	if rawnode.IsEmpty(raw) {
		return nil, false
	}
	key, body, ok := rawnode.FirstKey(raw)
	if !ok {
		return nil, false
	}

	cfg := pc.Config
	className := sanitizeKey(cfg, key)
	if isIgnored(className) {
		return nil, false
	}

	ctor, found := cfg.Registry.Lookup(types.TypeTag(className))
	if !found {
		ctor, found = stub.Synthesize(cfg, pc, className, body, recurser)
		if !found {
			return nil, false
		}
	}

	start := time.Now()
	cfg.Aspects.Before(className)
	node, err := ctor(pc, body)
	elapsed := time.Since(start).Nanoseconds()

	if err != nil {
		cfg.Aspects.After(className, nil, elapsed)
		report(cfg, types.Event{Category: types.CategoryParse, ClassName: className, Body: body, Err: err})
		return nil, false
	}
	if node == nil {
		cfg.Aspects.After(className, nil, elapsed)
		return nil, false
	}

	if len(allowed) > 0 && !node.Is(allowed...) {
		cfg.Aspects.After(className, node, elapsed)
		report(cfg, types.Event{Category: types.CategoryTypecheck, Actual: node.TypeTag(), Expected: allowed})
		return nil, false
	}

	cfg.Aspects.After(className, node, elapsed)
	if active := pc.ActiveOrNil(); active != nil {
		active.Add(node.TypeTag(), node)
	}
	return node, true
}

// ParseArray implements spec §4.D's parse_array. raw must be an ordered
// list of wrappers or absent; a single wrapper is a hard condition
// (ErrExpectedArray), matching spec §7's shape-mismatch rule.
func ParseArray(pc *types.ParseContext, raw rawnode.Raw, allowed ...types.TypeTag) (types.ObservedArray, error) {
	if rawnode.IsEmpty(raw) {
		return types.NewObservedArray(nil), nil
	}
	list, ok := rawnode.AsList(raw)
	if !ok {
		if _, isWrapper := rawnode.AsObject(raw); isWrapper {
			return types.ObservedArray{}, ErrExpectedArray
		}
		return types.NewObservedArray(nil), nil
	}
	var out []types.Node
	for _, item := range list {
		if node, ok := ParseItem(pc, item, allowed...); ok {
			out = append(out, node)
		}
	}
	return types.NewObservedArray(out), nil
}

// Parse implements spec §4.D's parse, unifying item and array parsing into
// a SuperParsedResult. With requireArray, the result is always an array
// view (empty if raw was absent); without it, the result mirrors raw's own
// shape — a list yields Many, a wrapper yields Single.
func Parse(pc *types.ParseContext, raw rawnode.Raw, requireArray bool, allowed ...types.TypeTag) (types.SuperParsedResult, error) {
	if requireArray {
		arr, err := ParseArray(pc, raw, allowed...)
		if err != nil {
			return types.SuperParsedResult{}, err
		}
		return types.Many(arr), nil
	}
	if rawnode.IsEmpty(raw) {
		return types.SuperParsedResult{}, nil
	}
	if _, isList := rawnode.AsList(raw); isList {
		arr, err := ParseArray(pc, raw, allowed...)
		if err != nil {
			return types.SuperParsedResult{}, err
		}
		return types.Many(arr), nil
	}
	node, ok := ParseItem(pc, raw, allowed...)
	if !ok {
		return types.SuperParsedResult{}, nil
	}
	return types.Single(node), nil
}

func sanitizeKey(cfg types.Config, key string) string {
	if cfg.Sanitize == nil {
		return key
	}
	return cfg.Sanitize(key)
}

func report(cfg types.Config, ev types.Event) {
	if cfg.Reporter != nil {
		cfg.Reporter.Report(ev)
	}
}
