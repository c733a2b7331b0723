// Copyright 2017 ETH Zurich
// Copyright 2018 ETH Zurich, Anapaya Systems
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

// Package prom contains label names and values shared by the prometheus
// metrics of the edge router.
package prom

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Common label values.
const (
	// LabelResult is the label for result classifications.
	LabelResult = "result"
	// LabelOperation is the label for the name of an executed operation.
	LabelOperation = "op"
)

// Common result values.
const (
	// Success is no error.
	Success = "ok_success"
	// ErrInternal is an internal error.
	ErrInternal = "err_internal"
	// ErrInvalidReq is an invalid request.
	ErrInvalidReq = "err_invalid_request"
	// ErrNotClassified is an error that is not further classified.
	ErrNotClassified = "err_not_classified"
	// ErrValidate is used for validation related errors.
	ErrValidate = "err_validate"
	// ErrUnavailable is used for errors where a resource is not available.
	ErrUnavailable = "err_unavailable"
	// ErrFull is used for errors where a bounded resource is exhausted.
	ErrFull = "err_full"
)

// Classifier maps a sentinel error to a result label value.
type Classifier map[error]string

// Result returns the result label value for err. Errors that match none of
// the sentinels are ErrNotClassified.
func (c Classifier) Result(err error) string {
	if err == nil {
		return Success
	}
	for sentinel, result := range c {
		if errors.Is(err, sentinel) {
			return result
		}
	}
	return ErrNotClassified
}

// ExportElementID exports the element ID as a constant label of the
// edge_element_id gauge in the default registry. Exporting the same ID twice
// is a no-op.
func ExportElementID(id string) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "edge_element_id",
		Help:        "The ID of this element, exported as label.",
		ConstLabels: prometheus.Labels{"element_id": id},
	})
	g.Set(1)
	if err := prometheus.Register(g); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
	}
}
