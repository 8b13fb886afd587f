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

// Package config loads the small set of operator-tunable knobs this module
// exposes beyond compiled-in defaults: extra sanitizer rules (for a new
// Renderer-suffix alias upstream adds before this module's next release)
// and the stub generator's diagnostic rate limit. Loaded through
// github.com/spf13/viper, in the spirit of the teacher framework's
// types.Config/NewConfig layering, generalized from rule-chain definitions
// (engine.JsonParser.DecodeChain) to this module's narrower tunable
// surface — there is no equivalent of a rule chain document here, only a
// handful of knobs, so one YAML file suffices.
//
// Package config 加载本模块暴露的少量可调参数。
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/bittoy/ytparse/sanitize"
)

// File is the parsed shape of the YAML/JSON/TOML config viper understands.
type File struct {
	// SanitizerRules extends sanitize.DefaultRules; each entry's From is a
	// Go regexp source string, applied in declared order after the
	// built-in rules.
	SanitizerRules []RuleSpec `mapstructure:"sanitizer_rules"`

	// RateLimit tunes the stub generator's diagnostic throttle (spec §4.I).
	RateLimit RateLimitSpec `mapstructure:"rate_limit"`
}

// RuleSpec is one YAML-configured sanitizer substitution.
type RuleSpec struct {
	Name string `mapstructure:"name"`
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// RateLimitSpec configures a golang.org/x/time/rate.Limiter.
type RateLimitSpec struct {
	EventsPerSecond float64 `mapstructure:"events_per_second"`
	Burst           int     `mapstructure:"burst"`
}

// Load reads path (any format viper supports by extension: yaml, json,
// toml) into a File. A missing RateLimit section defaults to 0.5 events/s,
// burst 4, matching stub.defaultLimiter.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("rate_limit.events_per_second", 0.5)
	v.SetDefault("rate_limit.burst", 4)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return &f, nil
}

// Sanitizer builds a *sanitize.Sanitizer running sanitize.DefaultRules
// followed by f.SanitizerRules, in order. An invalid regexp in a RuleSpec
// is a startup-time error, not a parse-time diagnostic — this module never
// tolerates a broken config the way it tolerates an unknown upstream class.
func (f *File) Sanitizer() (*sanitize.Sanitizer, error) {
	rules := append([]sanitize.Rule(nil), sanitize.DefaultRules...)
	for _, spec := range f.SanitizerRules {
		re, err := compileRule(spec)
		if err != nil {
			return nil, err
		}
		rules = append(rules, re)
	}
	return sanitize.NewWithRules(rules), nil
}

// Limiter builds a rate.Limiter from f.RateLimit.
func (f *File) Limiter() *rate.Limiter {
	eps := f.RateLimit.EventsPerSecond
	if eps <= 0 {
		eps = 0.5
	}
	burst := f.RateLimit.Burst
	if burst <= 0 {
		burst = 4
	}
	return rate.NewLimiter(rate.Limit(eps), burst)
}

// ReloadInterval is the suggested polling period for callers that want to
// pick up sanitizer-rule/rate-limit changes without a process restart; this
// module does not watch the filesystem itself (spec's non-goals exclude a
// long-running service layer), so it only documents the recommendation.
const ReloadInterval = 5 * time.Minute
