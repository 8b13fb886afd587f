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

import (
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Registry is the interface every parser component dispatches through to
// resolve a sanitized class name to a Constructor. Implemented by
// package registry's *registry.Registry; declared here (rather than
// imported from there) so types has no dependency on registry, avoiding an
// import cycle, since registry.Registry implements this interface using
// the Node/Constructor/TypeTag types declared in this package.
//
// Registry 是每个解析组件用于将清洗后的类名解析为 Constructor 的接口。
type Registry interface {
	// Lookup returns the constructor registered for tag, if any.
	Lookup(tag TypeTag) (Constructor, bool)
	// Has reports whether tag is registered, without constructing anything.
	Has(tag TypeTag) bool
	// AddRuntime registers (or replaces) a constructor synthesized at parse
	// time by the stub generator. Append-only with respect to statically
	// known classes: it never removes an existing entry, only adds or
	// refines a dynamic one.
	AddRuntime(tag TypeTag, ctor Constructor, proto Node)
	// DynamicEntries returns every runtime-registered (tag, prototype) pair,
	// for tooling that persists synthesized schemas back into the static
	// registry.
	DynamicEntries() []Registration
}

// Reporter is the single pluggable sink for every parser diagnostic (see
// the six event categories in Event). Fire-and-forget: a Reporter must
// never influence parser control flow, and no event short-circuits parsing
// of siblings.
//
// Reporter 是每个解析器诊断事件的唯一可插拔接收器。
type Reporter interface {
	Report(Event)
}

// Config bundles the ambient, process-wide-by-convention dependencies every
// parser component needs: where to dispatch class names (Registry), where
// to send diagnostics (Reporter), how to normalize class names (Sanitize,
// a func from raw wrapper key to class name), a rate limiter
// throttling repeated
// class_not_found/class_changed events during a schema-churn burst, and a
// structured logger mirroring diagnostics for local operators.
//
// Config 捆绑了每个解析组件所需的环境依赖。
type Config struct {
	Registry Registry
	Reporter Reporter
	Sanitize func(key string) string
	Limiter  *rate.Limiter
	Logger   zerolog.Logger
	Aspects  AspectList
}

// Option configures a Config using the functional options pattern.
type Option func(*Config)

// WithRegistry sets the class-name registry.
func WithRegistry(r Registry) Option {
	return func(c *Config) { c.Registry = r }
}

// WithReporter sets the diagnostics sink.
func WithReporter(r Reporter) Option {
	return func(c *Config) { c.Reporter = r }
}

// WithSanitize sets the class-name normalization function.
func WithSanitize(fn func(key string) string) Option {
	return func(c *Config) { c.Sanitize = fn }
}

// WithLimiter sets the rate limiter guarding stub-generator diagnostics.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Config) { c.Limiter = l }
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithAspects sets the cross-cutting dispatch hooks (metrics, tracing).
func WithAspects(a ...ParseAspect) Option {
	return func(c *Config) { c.Aspects = append(c.Aspects, a...) }
}

// NewConfig builds a Config from opts, applied in order over an empty
// Config. Callers typically layer this module's defaults (registry.Default,
// report.GetDefault(), sanitize.Sanitize) via response.NewOptions rather
// than calling NewConfig directly; NewConfig itself sets no defaults so
// tests can build a fully isolated Config.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
