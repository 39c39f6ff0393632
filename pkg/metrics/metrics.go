// Copyright 2025 The Trustplane Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics defines narrow metric interfaces decoupled from the
// underlying prometheus implementation. A nil metric is valid and discards
// all updates, so instrumented code does not need to special-case tests or
// deployments without a metrics backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter describes a metric that accumulates values monotonically.
type Counter interface {
	With(labelValues ...string) Counter
	Add(delta float64)
}

// Gauge describes a metric that takes arbitrary values.
type Gauge interface {
	With(labelValues ...string) Gauge
	Set(value float64)
}

// CounterInc increments the counter by one, if the counter is not nil.
func CounterInc(c Counter) {
	if c == nil {
		return
	}
	c.Add(1)
}

// GaugeSet sets the gauge to the given value, if the gauge is not nil.
func GaugeSet(g Gauge, value float64) {
	if g == nil {
		return
	}
	g.Set(value)
}

// NewPromCounter wraps a prometheus counter vector as a counter. Returns nil
// if cv is nil.
func NewPromCounter(cv *prometheus.CounterVec) Counter {
	if cv == nil {
		return nil
	}
	return &counter{cv: cv}
}

// NewPromGauge wraps a prometheus gauge vector as a gauge. Returns nil if gv
// is nil.
func NewPromGauge(gv *prometheus.GaugeVec) Gauge {
	if gv == nil {
		return nil
	}
	return &gauge{gv: gv}
}

// labelValuesSlice provides validation and aggregation on With calls.
type labelValuesSlice []string

func (lvs labelValuesSlice) With(labelValues ...string) labelValuesSlice {
	if len(labelValues)%2 != 0 {
		labelValues = append(labelValues, "unknown")
	}
	result := make(labelValuesSlice, len(lvs))
	copy(result, lvs)
	return append(result, labelValues...)
}

// counter implements Counter, via a Prometheus CounterVec.
type counter struct {
	cv  *prometheus.CounterVec
	lvs labelValuesSlice
}

func (c *counter) With(labelValues ...string) Counter {
	return &counter{cv: c.cv, lvs: c.lvs.With(labelValues...)}
}

func (c *counter) Add(delta float64) {
	c.cv.With(makeLabels(c.lvs...)).Add(delta)
}

// gauge implements Gauge, via a Prometheus GaugeVec.
type gauge struct {
	gv  *prometheus.GaugeVec
	lvs labelValuesSlice
}

func (g *gauge) With(labelValues ...string) Gauge {
	return &gauge{gv: g.gv, lvs: g.lvs.With(labelValues...)}
}

func (g *gauge) Set(value float64) {
	g.gv.With(makeLabels(g.lvs...)).Set(value)
}

func makeLabels(labelValues ...string) prometheus.Labels {
	labels := prometheus.Labels{}
	for i := 0; i+1 < len(labelValues); i += 2 {
		labels[labelValues[i]] = labelValues[i+1]
	}
	return labels
}
