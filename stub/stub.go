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

// Package stub implements the runtime class synthesizer (spec §4.I):
// introspecting an unknown wrapper's key/value shape, registering a
// synthesized Constructor, and emitting class_not_found / class_changed
// diagnostics. This generalizes the teacher framework's plugin-loading
// path (engine/registry.go's Register, invoked once at startup for a known
// component) to a path invoked mid-parse for a class nobody declared ahead
// of time.
//
// Package stub 实现运行时类合成器（见 §4.I）。
package stub

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// Recurser is handed to Synthesize by package parser so a synthesized
// constructor can recurse into nested wrappers/arrays without package stub
// importing package parser (parser already imports stub on a registry
// miss, so the reverse import would cycle).
type Recurser struct {
	ParseItem  func(pc *types.ParseContext, raw rawnode.Raw, allowed ...types.TypeTag) (types.Node, bool)
	ParseArray func(pc *types.ParseContext, raw rawnode.Raw, allowed ...types.TypeTag) (types.ObservedArray, error)
}

// schema is the recorded key shape for one synthesized class, compared on
// every later construction to detect drift (class_changed).
type schema struct {
	mu      sync.Mutex
	id      string
	keyInfo []types.KeyInfo
}

var (
	schemasMu sync.Mutex
	schemas   = map[string]*schema{}
)

// defaultLimiter throttles class_not_found/class_changed diagnostics when
// cfg.Limiter is nil, so a schema-churn burst (many distinct new classes in
// one response) cannot flood a misconfigured caller's log sink. 0.5 events
// per second with a burst of 4 — generous enough that a single response's
// worth of genuinely distinct new classes all get reported.
var defaultLimiter = rate.NewLimiter(rate.Limit(0.5), 4)

// Synthesize implements spec §4.I. className is already sanitized. On
// success it registers a Constructor into cfg.Registry.AddRuntime and
// returns it so the caller (package parser) can invoke it exactly like a
// statically registered one; ctor is also returned so ParseItem doesn't
// need to re-look-up the registry.
func Synthesize(cfg types.Config, pc *types.ParseContext, className string, body rawnode.Raw, rec Recurser) (types.Constructor, bool) {
	keyInfo := introspect(body)

	schemasMu.Lock()
	s, existed := schemas[className]
	if !existed {
		s = &schema{id: newCorrelationID(), keyInfo: keyInfo}
		schemas[className] = s
	}
	schemasMu.Unlock()

	limiter := cfg.Limiter
	if limiter == nil {
		limiter = defaultLimiter
	}
	if limiter.Allow() {
		report(cfg, types.Event{
			Category:    types.CategoryClassNotFound,
			ClassName:   className,
			KeyInfo:     keyInfo,
			ClassSketch: renderSketch(className, keyInfo, s.id),
		})
	}

	tag := types.TypeTag(className)
	ctor := func(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
		return constructStub(cfg, pc, tag, s, body, rec, limiter)
	}
	proto := &Node{tag: tag, props: types.NewProperties()}
	cfg.Registry.AddRuntime(tag, ctor, proto)
	return ctor, true
}

func constructStub(cfg types.Config, pc *types.ParseContext, tag types.TypeTag, s *schema, body rawnode.Raw, rec Recurser, limiter *rate.Limiter) (types.Node, error) {
	keyInfo := introspect(body)

	s.mu.Lock()
	prior := s.keyInfo
	changed := diff(prior, keyInfo)
	if len(changed) > 0 {
		s.keyInfo = keyInfo
	}
	id := s.id
	s.mu.Unlock()

	if len(changed) > 0 && limiter.Allow() {
		report(cfg, types.Event{
			Category:    types.CategoryClassChanged,
			ClassName:   string(tag),
			PriorInfo:   prior,
			KeyInfo:     keyInfo,
			ClassSketch: renderSketch(string(tag), keyInfo, id),
		})
	}

	props := types.NewProperties()
	obj, _ := rawnode.AsObject(body)
	if obj != nil {
		for _, ki := range keyInfo {
			raw, _ := obj.Get(ki.Key)
			props.Put(snakeCase(ki.Key), projectValue(pc, ki.Kind, raw, rec))
		}
	}
	return &Node{tag: tag, props: props}, nil
}

func projectValue(pc *types.ParseContext, kind types.KeyKind, raw rawnode.Raw, rec Recurser) any {
	switch kind {
	case types.KindWrapper:
		if node, ok := rec.ParseItem(pc, raw); ok {
			return node
		}
		return nil
	case types.KindArray:
		arr, err := rec.ParseArray(pc, raw)
		if err != nil {
			return raw
		}
		return arr
	default:
		return raw
	}
}

func report(cfg types.Config, ev types.Event) {
	if cfg.Reporter != nil {
		cfg.Reporter.Report(ev)
	}
}

