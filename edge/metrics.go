// Copyright 2025 Anapaya Systems
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

package edge

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sixlowpan/edgerouter/pkg/metrics"
	"github.com/sixlowpan/edgerouter/pkg/private/prom"
)

// Namespace is the prometheus namespace of the edge router metrics.
const Namespace = "edge"

// Operation label values.
const (
	OpInitialize      = "initialize"
	OpDefineContext   = "define_context"
	OpAllocateContext = "allocate_context"
	OpAddContext      = "add_context"
	OpAddPrefix       = "add_prefix"
)

// Metrics are the metrics of the border router cache.
type Metrics struct {
	// Version is the current ABRO version.
	Version prometheus.Gauge
	// Contexts is the number of contexts in the cache.
	Contexts prometheus.Gauge
	// Prefixes is the number of prefixes in the cache.
	Prefixes prometheus.Gauge
	// OperationsTotal counts cache operations by operation and result.
	OperationsTotal *prometheus.CounterVec
}

// NewMetrics creates the border router metrics and registers them according
// to opts.
func NewMetrics(opts ...metrics.Option) *Metrics {
	f := metrics.ApplyOptions(opts...).Auto()
	return &Metrics{
		Version: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "abro_version",
			Help:      "Current version of the authoritative border router option.",
		}),
		Contexts: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "contexts",
			Help:      "Number of header compression contexts in the cache.",
		}),
		Prefixes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "prefixes",
			Help:      "Number of on-link prefixes in the cache.",
		}),
		OperationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "cache_operations_total",
				Help:      "Total number of border router cache operations.",
			},
			[]string{prom.LabelOperation, prom.LabelResult},
		),
	}
}

func (m *Metrics) observe(op string, err error) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(op, resultClassifier.Result(err)).Inc()
}

func (m *Metrics) update(s Snapshot) {
	if m == nil {
		return
	}
	m.Version.Set(float64(s.Version))
	m.Contexts.Set(float64(len(s.Contexts)))
	m.Prefixes.Set(float64(len(s.Prefixes)))
}
