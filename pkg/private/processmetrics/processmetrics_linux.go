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

package processmetrics

import (
	"runtime"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/procfs"

	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

var (
	runningTime = prometheus.NewDesc(
		"process_running_seconds_total",
		"CPU time the process used (running state) since it started (all threads summed).",
		nil, nil,
	)
	runnableTime = prometheus.NewDesc(
		"process_runnable_seconds_total",
		"CPU time the process was denied (runnable state) since it started (all threads summed).",
		nil, nil,
	)
	threads = prometheus.NewDesc(
		"process_threads",
		"Number of OS threads of the process.",
		nil, nil,
	)
	goCores = prometheus.NewDesc(
		"go_sched_maxprocs_threads",
		"The current runtime.GOMAXPROCS setting. The number of cores Go code uses simultaneously",
		nil, nil,
	)
)

// procStatCollector is a custom collector for some process-wide statistics
// that are not available in default collectors.
type procStatCollector struct {
	mtx           sync.Mutex
	self          procfs.Proc
	fs            procfs.FS
	threadCount   int
	totalRunning  uint64
	totalRunnable uint64
}

// updateStat sums the scheduling statistics of all threads from
// /proc/<pid>/task/*/schedstat.
func (c *procStatCollector) updateStat() error {
	tasks, err := c.fs.AllThreads(c.self.PID)
	if err != nil {
		return err
	}
	var running, runnable uint64
	for _, p := range tasks {
		schedStat, oneErr := p.Schedstat()
		if oneErr != nil {
			// The thread disappeared, the others are still valid.
			err = oneErr
			continue
		}
		running += schedStat.RunningNanoseconds
		runnable += schedStat.WaitingNanoseconds
	}
	c.threadCount = len(tasks)
	c.totalRunning = running
	c.totalRunnable = runnable
	return err
}

// Describe tells prometheus all the metrics that this collector
// collects.
func (c *procStatCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

// Collect refreshes the raw statistics and reports them in SI units.
func (c *procStatCollector) Collect(ch chan<- prometheus.Metric) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	_ = c.updateStat()

	ch <- prometheus.MustNewConstMetric(
		runningTime,
		prometheus.CounterValue,
		float64(c.totalRunning)/1e9,
	)
	ch <- prometheus.MustNewConstMetric(
		runnableTime,
		prometheus.CounterValue,
		float64(c.totalRunnable)/1e9,
	)
	ch <- prometheus.MustNewConstMetric(
		threads,
		prometheus.GaugeValue,
		float64(c.threadCount),
	)
	ch <- prometheus.MustNewConstMetric(
		goCores,
		prometheus.GaugeValue,
		float64(runtime.GOMAXPROCS(-1)),
	)
}

// Init creates a new collector for process statistics and registers it
// with reg. It is safe to ignore errors from this but prometheus may lack
// some metrics.
func Init(reg prometheus.Registerer) error {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return serrors.Wrap("opening procfs", err)
	}
	self, err := fs.Self()
	if err != nil {
		return serrors.Wrap("reading own process", err)
	}
	c := &procStatCollector{self: self, fs: fs}
	if err := c.updateStat(); err != nil {
		// Ditch the broken collector. It won't do anything useful.
		return serrors.Wrap("first update failed", err, "pid", self.PID)
	}
	if err := reg.Register(c); err != nil {
		return serrors.Wrap("registration failed", err)
	}
	return nil
}
