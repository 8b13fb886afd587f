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

// Package response implements the response parser (spec §4.G): the
// top-level orchestrator that walks a decoded document's known section
// names, delegating each to the item/array/poly parser, the
// command/endpoint/action parser, or the continuation dispatcher, then
// runs the mutation engine once structural parsing is done. It is the
// direct generalization of the teacher framework's chain engine
// (engine/chain_engine.go's top-to-bottom node execution over a rule
// chain) to this domain's fixed, closed set of top-level sections instead
// of a user-authored DAG.
//
// 包 response 实现响应解析器（见 §4.G）。
package response

import (
	_ "github.com/bittoy/ytparse/nodes" // triggers node-class registration
	"github.com/bittoy/ytparse/registry"
	"github.com/bittoy/ytparse/report"
	"github.com/bittoy/ytparse/sanitize"
	"github.com/bittoy/ytparse/types"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// NewOptions builds a types.Config layering this module's defaults —
// registry.Default, the process-wide report.GetDefault() reporter,
// sanitize.Sanitize, and a 0.5-events/sec rate limiter — with any caller
// overrides applied afterward. This is the entry point most callers use
// instead of types.NewConfig directly (see types.Config's doc comment).
func NewOptions(opts ...types.Option) types.Config {
	cfg := types.NewConfig(
		types.WithRegistry(registry.Default),
		types.WithReporter(report.GetDefault()),
		types.WithSanitize(sanitize.Sanitize),
		types.WithLimiter(rate.NewLimiter(rate.Limit(0.5), 4)),
		types.WithLogger(zerolog.Nop()),
	)
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
