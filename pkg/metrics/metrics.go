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

// Package metrics provides a factory that creates prometheus collectors and
// registers them with a configurable registry. Tests pass a fresh registry
// with WithRegistry so that metrics of independent instances do not collide.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Option func(*Options)

// Options configures the metrics Factory, construct it using the ApplyOptions
// function.
type Options struct {
	registry prometheus.Registerer
	labels   prometheus.Labels
}

func (o Options) registerer() prometheus.Registerer {
	reg := o.registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if len(o.labels) != 0 {
		reg = prometheus.WrapRegistererWith(o.labels, reg)
	}
	return reg
}

// WithRegistry sets the registry the collectors are registered with.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(o *Options) {
		o.registry = registry
	}
}

// WithConstLabels adds constant labels to every collector created by the
// factory, e.g. the element ID.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *Options) {
		o.labels = labels
	}
}

func ApplyOptions(options ...Option) Options {
	opts := Options{}
	for _, option := range options {
		option(&opts)
	}
	return opts
}

// Auto creates a Factory that uses the provided Options as registry. If no
// explicit registry is set the default registry is used.
func (o Options) Auto() Factory {
	return Factory{reg: o.registerer()}
}

// Factory is a metrics Factory that registers metrics using the provided
// Options. Construct it using the Options.Auto function.
type Factory struct {
	reg prometheus.Registerer
}

func (f Factory) NewCounterVec(
	opts prometheus.CounterOpts,
	labelNames []string,
) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labelNames)
	f.reg.MustRegister(c)
	return c
}

func (f Factory) NewGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	f.reg.MustRegister(g)
	return g
}

// Register registers an arbitrary collector, e.g. a custom process collector.
func (f Factory) Register(c prometheus.Collector) {
	f.reg.MustRegister(c)
}
