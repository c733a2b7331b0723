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

package prom_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixlowpan/edgerouter/pkg/private/prom"
	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

func TestClassifierResult(t *testing.T) {
	errFull := errors.New("full")
	errBad := errors.New("bad")
	c := prom.Classifier{errFull: prom.ErrFull, errBad: prom.ErrInvalidReq}

	assert.Equal(t, prom.Success, c.Result(nil))
	assert.Equal(t, prom.ErrFull, c.Result(serrors.JoinNoStack(errFull, nil, "capacity", 4)))
	assert.Equal(t, prom.ErrInvalidReq, c.Result(serrors.Wrap("wrapped", errBad)))
	assert.Equal(t, prom.ErrNotClassified, c.Result(errors.New("other")))
}

func TestExportElementID(t *testing.T) {
	assert.NotPanics(t, func() {
		prom.ExportElementID("edge-test")
		prom.ExportElementID("edge-test")
	})
}
