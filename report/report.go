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

// Package report implements the error reporter (spec §4.J): a single
// pluggable, fire-and-forget sink for the six diagnostic event categories.
// The default implementation mirrors each event to a zerolog.Logger,
// generalizing the teacher framework's log-and-continue stance on node
// execution failures (see engine/rule_context.go's onErr/onDebug hooks) to
// this domain's narrower, closed set of categories.
//
// Package report 实现错误报告器（见 §4.J）。
package report

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bittoy/ytparse/types"
)

// Default is a types.Reporter that logs every event at a level keyed by
// category: class_not_found and class_changed are expected noise during
// schema churn (Info), parse/typecheck/mutation_data_* are Warn.
type Default struct {
	logger zerolog.Logger
}

// NewDefault returns a Default reporting through logger.
func NewDefault(logger zerolog.Logger) *Default {
	return &Default{logger: logger}
}

// Report implements types.Reporter.
func (d *Default) Report(ev types.Event) {
	switch ev.Category {
	case types.CategoryParse:
		d.logger.Warn().
			Str("category", string(ev.Category)).
			Str("class", ev.ClassName).
			Err(ev.Err).
			Msg("constructor failed")
	case types.CategoryTypecheck:
		d.logger.Warn().
			Str("category", string(ev.Category)).
			Str("actual", string(ev.Actual)).
			Interface("expected", ev.Expected).
			Msg("dispatched class outside allowed type set")
	case types.CategoryMutationDataMissing:
		d.logger.Warn().
			Str("category", string(ev.Category)).
			Str("class", ev.ClassName).
			Msg("memo has affected nodes but mutations list is absent")
	case types.CategoryMutationDataInvalid:
		d.logger.Warn().
			Str("category", string(ev.Category)).
			Int("total_affected", ev.TotalAffected).
			Strs("failed_titles", ev.FailedTitles).
			Msg("mutation pass had unmatched entities")
	case types.CategoryClassNotFound:
		d.logger.Info().
			Str("category", string(ev.Category)).
			Str("class", ev.ClassName).
			Interface("keys", ev.KeyInfo).
			Str("sketch", ev.ClassSketch).
			Msg("synthesizing stub class")
	case types.CategoryClassChanged:
		d.logger.Info().
			Str("category", string(ev.Category)).
			Str("class", ev.ClassName).
			Interface("prior_keys", ev.PriorInfo).
			Interface("keys", ev.KeyInfo).
			Msg("stub class key shape changed")
	default:
		d.logger.Warn().Str("category", string(ev.Category)).Msg("unrecognized diagnostic category")
	}
}

var (
	defaultMu       sync.RWMutex
	defaultReporter types.Reporter = NewDefault(zerolog.New(os.Stderr).With().Timestamp().Logger())
)

// GetDefault returns the process-wide default reporter (spec §5: "the
// registry and the error-reporter pointer are process-wide mutable
// singletons"). response.NewOptions installs this value as the Config's
// reporter before applying caller options, so a caller that never
// configures a reporter still gets one; types.NewConfig sets no default.
func GetDefault() types.Reporter {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultReporter
}

// SetDefault replaces the process-wide default reporter wholesale (spec
// §4.J: "callers may replace it"; §9: "offer explicit setter/getter"),
// mirroring the teacher's global mutable Config.Logger singleton pattern.
func SetDefault(r types.Reporter) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultReporter = r
}

// Collector is a types.Reporter that retains every event it receives, in
// arrival order — used by tests asserting on the event stream (spec §8's
// testable properties reference emitted counts and categories directly)
// and by tooling that batches diagnostics for a dashboard instead of a log
// sink.
type Collector struct {
	Events []types.Event
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report implements types.Reporter.
func (c *Collector) Report(ev types.Event) {
	c.Events = append(c.Events, ev)
}

// ByCategory returns every collected event of category, in arrival order.
func (c *Collector) ByCategory(category types.Category) []types.Event {
	var out []types.Event
	for _, ev := range c.Events {
		if ev.Category == category {
			out = append(out, ev)
		}
	}
	return out
}
