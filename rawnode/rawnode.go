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

// Package rawnode defines the shapes a decoded InnerTube-style response
// document takes once it has gone through encoding/json, plus a handful of
// accessors that never panic. Every other package in this module reads raw
// input exclusively through these helpers so that a malformed or
// unexpectedly-shaped document degrades to an absent value instead of a
// runtime panic.
package rawnode

// Raw is any node in the decoded document tree: nil, bool, float64, string,
// []Raw, or *Object — what Decode produces, preserving object key order
// (see object.go).
type Raw = any

// AsMap returns v's keys as a plain map[string]any, discarding order. Use
// AsObject instead when the first key or declared order matters.
func AsMap(v Raw) (map[string]any, bool) {
	o, ok := AsObject(v)
	if !ok {
		return nil, false
	}
	return o.ToMap(), true
}

// AsList returns v as a []Raw if it is one.
func AsList(v Raw) ([]Raw, bool) {
	l, ok := v.([]Raw)
	return l, ok
}

// AsString returns v as a string if it is one.
func AsString(v Raw) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsNumber returns v as a float64 if it is a JSON number.
func AsNumber(v Raw) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}

// Get looks up key in v if v is an object, returning (nil, false) otherwise.
func Get(v Raw, key string) (Raw, bool) {
	o, ok := AsObject(v)
	if !ok {
		return nil, false
	}
	return o.Get(key)
}

// IsEmpty reports whether v is nil, an empty object, or an empty list. A
// wrapper with no keys parses to empty per the item-parser contract.
func IsEmpty(v Raw) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case *Object:
		return t.Len() == 0
	case []Raw:
		return len(t) == 0
	default:
		return false
	}
}

// FirstKey returns the wrapper's declared-order first key.
func FirstKey(v Raw) (string, Raw, bool) {
	o, ok := AsObject(v)
	if !ok {
		return "", nil, false
	}
	return o.First()
}
