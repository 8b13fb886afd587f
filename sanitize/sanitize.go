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

// Package sanitize implements the class-name normalization described in
// spec §4.C: a pure, deterministic, information-lossy transform applied to
// every candidate wrapper key before a registry lookup.
//
// Package sanitize 实现类名归一化（见 §4.C）：在任何注册表查找之前，对每个
// 候选包装键施加的纯、确定性、有损的变换。
package sanitize

import (
	"regexp"
	"strings"
)

var (
	stripPattern = regexp.MustCompile(`Renderer|Model`)
	radioPattern = regexp.MustCompile(`Radio`)
)

// Rule is one named substitution in the sanitizer's pipeline, exposed so
// config.Load can extend the built-in rule set from YAML without touching
// this package (see config.File.SanitizerRules and config.File.Sanitizer).
type Rule struct {
	Name string
	From *regexp.Regexp
	To   string
}

// DefaultRules is the closed two-rule pipeline spec §4.C and §6 name: strip
// every occurrence of Renderer or Model, then alias every occurrence of
// Radio to Mix. The strip runs first, so musicRadioShelfRenderer sanitizes
// to MusicMixShelf, the same as musicRadioShelf.
var DefaultRules = []Rule{
	{Name: "strip-renderer-model", From: stripPattern, To: ""},
	{Name: "radio-to-mix", From: radioPattern, To: "Mix"},
}

// Sanitizer applies a configurable rule pipeline on top of the fixed
// capitalize-and-trim steps from spec §3. The zero value has no rules and
// only capitalizes and trims; use New for DefaultRules.
type Sanitizer struct {
	rules []Rule
}

// New returns a Sanitizer running exactly DefaultRules. Use NewWithRules to
// extend or replace the pipeline (see config.File.Sanitizer, which appends
// the rules loaded by config.Load to DefaultRules).
func New() *Sanitizer {
	return &Sanitizer{rules: DefaultRules}
}

// NewWithRules returns a Sanitizer running rules in order, in place of
// DefaultRules. An empty slice degrades to capitalize+trim only.
func NewWithRules(rules []Rule) *Sanitizer {
	return &Sanitizer{rules: rules}
}

// Sanitize implements the algorithm from spec §3: trim surrounding
// whitespace, capitalize the first letter, apply every configured
// substitution (global, all occurrences), then trim surrounding whitespace
// again. It is pure and idempotent: sanitizing an already-sanitized name
// returns it unchanged.
//
// Sanitize 实现 §3 中的算法：裁剪首尾空白、首字母大写、应用所有配置的替换规则、再裁剪首尾空白。
func (s *Sanitizer) Sanitize(key string) string {
	name := capitalize(strings.TrimSpace(key))
	for _, r := range s.rules {
		name = r.From.ReplaceAllString(name, r.To)
	}
	return strings.TrimSpace(name)
}

var defaultSanitizer = New()

// Sanitize is the package-level default Sanitizer's Sanitize, convenient
// for callers that never need a custom rule set (the common case — most of
// this module wires types.Config.Sanitize directly to this function).
func Sanitize(key string) string {
	return defaultSanitizer.Sanitize(key)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - ('a' - 'A')
	}
	return string(r)
}
