// Copyright 2023 Anapaya Systems
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

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixlowpan/edgerouter/pkg/metrics"
)

func TestFactoryRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := metrics.ApplyOptions(
		metrics.WithRegistry(reg),
		metrics.WithConstLabels(prometheus.Labels{"elem": "edge-1"}),
	).Auto()

	g := f.NewGauge(prometheus.GaugeOpts{Name: "test_gauge", Help: "help"})
	g.Set(3)
	c := f.NewCounterVec(prometheus.CounterOpts{Name: "test_total", Help: "help"},
		[]string{"op"})
	c.WithLabelValues("add").Inc()

	assert.Equal(t, 3.0, testutil.ToFloat64(g))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.WithLabelValues("add")))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 2)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var found bool
			for _, l := range m.GetLabel() {
				if l.GetName() == "elem" && l.GetValue() == "edge-1" {
					found = true
				}
			}
			assert.True(t, found, mf.GetName())
		}
	}

	// Registering the same name twice on the same registry panics.
	assert.Panics(t, func() {
		f.NewGauge(prometheus.GaugeOpts{Name: "test_gauge", Help: "help"})
	})
}
