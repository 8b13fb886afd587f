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

package metrics

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/bittoy/ytparse/types"
)

// Debug is a types.ParseAspect that logs every ParseItem dispatch at debug
// level, adapted from the teacher framework's builtin/aspect.NodeDebug
// (which logged before/after a rule node's OnMsg). Here there is no rule
// chain to show a "next node" for, so the log carries only the dispatched
// class name, the outcome, and elapsed time.
type Debug struct {
	Logger zerolog.Logger
}

// NewDebug returns a Debug aspect logging through logger.
func NewDebug(logger zerolog.Logger) Debug {
	return Debug{Logger: logger}
}

// Before implements types.ParseAspect.
func (d Debug) Before(className string) {
	d.Logger.Debug().Str("class", className).Msg("dispatch start")
}

// After implements types.ParseAspect.
func (d Debug) After(className string, result types.Node, elapsedNanos int64) {
	ev := d.Logger.Debug().Str("class", className).Dur("elapsed", time.Duration(elapsedNanos))
	if result == nil {
		ev.Bool("empty", true).Msg("dispatch end")
		return
	}
	ev.Str("tag", string(result.TypeTag())).Msg("dispatch end")
}
