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

// ParseAspect is a cross-cutting hook around a single ParseItem dispatch,
// generalizing the teacher framework's node-execution aspects (Before/
// After around OnMsg) to this domain's narrower event: constructing one
// node from one wrapper. Aspects never influence control flow — like the
// Reporter, they are observational only — but unlike the Reporter they see
// every dispatch, not just failures, which makes them the right seam for
// metrics (package metrics) and debug tracing.
//
// ParseAspect 是围绕单次 ParseItem 分发的横切钩子。
type ParseAspect interface {
	// Before is called immediately before dispatch, with the sanitized
	// class name whose constructor (looked up or synthesized) is about to
	// run.
	Before(className string)
	// After is called immediately after dispatch, with the resulting node
	// (nil on empty/failed parse) and how long construction took in
	// nanoseconds.
	After(className string, result Node, elapsedNanos int64)
}

// AspectList runs a set of ParseAspects in registration order.
type AspectList []ParseAspect

// Before invokes Before on every aspect in the list.
func (l AspectList) Before(className string) {
	for _, a := range l {
		a.Before(className)
	}
}

// After invokes After on every aspect in the list.
func (l AspectList) After(className string, result Node, elapsedNanos int64) {
	for _, a := range l {
		a.After(className, result, elapsedNanos)
	}
}
