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

// Package metrics exposes parser activity as prometheus metrics, grounded
// on the teacher framework's engine/metrics.go (request-count and
// duration-histogram vectors registered once at init). Here the labels are
// per-class dispatch rather than per-HTTP-route, and the vectors are
// reached through a types.ParseAspect instead of an HTTP middleware.
//
// Package metrics 以 prometheus 指标的形式暴露解析器活动。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bittoy/ytparse/types"
)

var (
	dispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ytparse",
			Subsystem: "parser",
			Name:      "dispatch_total",
			Help:      "Total ParseItem dispatches by class and outcome.",
		},
		[]string{"class", "outcome"},
	)

	dispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ytparse",
			Subsystem: "parser",
			Name:      "dispatch_duration_seconds",
			Help:      "ParseItem constructor latency by class.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"class"},
	)

	reportTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ytparse",
			Subsystem: "report",
			Name:      "events_total",
			Help:      "Total diagnostic events by category.",
		},
		[]string{"category"},
	)
)

func init() {
	prometheus.MustRegister(dispatchTotal, dispatchDuration, reportTotal)
}

// Aspect implements types.ParseAspect, recording dispatchTotal/Duration for
// every ParseItem call. Register it via types.WithAspects(metrics.Aspect{}).
type Aspect struct{}

// Before implements types.ParseAspect. It records nothing itself — the
// counter increment happens in After, once the outcome is known — but is
// part of the interface every ParseAspect must implement.
func (Aspect) Before(className string) {}

// After implements types.ParseAspect.
func (Aspect) After(className string, result types.Node, elapsedNanos int64) {
	outcome := "empty"
	if result != nil {
		outcome = "ok"
	}
	dispatchTotal.WithLabelValues(className, outcome).Inc()
	dispatchDuration.WithLabelValues(className).Observe(float64(elapsedNanos) / 1e9)
}

// Reporter wraps another types.Reporter, incrementing reportTotal per
// category before delegating. Compose with report.Default via
// metrics.NewReporter(report.NewDefault(logger)).
type Reporter struct {
	next types.Reporter
}

// NewReporter returns a Reporter delegating to next after counting.
func NewReporter(next types.Reporter) *Reporter {
	return &Reporter{next: next}
}

// Report implements types.Reporter.
func (r *Reporter) Report(ev types.Event) {
	reportTotal.WithLabelValues(string(ev.Category)).Inc()
	if r.next != nil {
		r.next.Report(ev)
	}
}
