// Copyright 2023 SCION Association
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

//go:build linux

package processmetrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixlowpan/edgerouter/pkg/private/processmetrics"
)

func TestInit(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, processmetrics.Init(reg))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]float64)
	for _, f := range families {
		m := f.GetMetric()[0]
		switch {
		case m.GetGauge() != nil:
			names[f.GetName()] = m.GetGauge().GetValue()
		case m.GetCounter() != nil:
			names[f.GetName()] = m.GetCounter().GetValue()
		}
	}
	assert.Contains(t, names, "process_running_seconds_total")
	assert.Contains(t, names, "process_runnable_seconds_total")
	assert.GreaterOrEqual(t, names["process_threads"], 1.0)
	assert.GreaterOrEqual(t, names["go_sched_maxprocs_threads"], 1.0)

	assert.Error(t, processmetrics.Init(reg), "second registration")
}
