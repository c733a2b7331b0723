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

package lowpan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixlowpan/edgerouter/pkg/lowpan"
)

func TestVersionNext(t *testing.T) {
	testCases := map[string]struct {
		Current  lowpan.Version
		Expected lowpan.Version
	}{
		"zero":       {Current: 0, Expected: 1},
		"mid":        {Current: 32767, Expected: 32768},
		"wraparound": {Current: 65535, Expected: 0},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			next := tc.Current.Next()
			assert.Equal(t, tc.Expected, next)
			assert.True(t, next.NewerThan(tc.Current))
			assert.False(t, tc.Current.NewerThan(next))
		})
	}
}

func TestVersionNewerThan(t *testing.T) {
	testCases := map[string]struct {
		A, B  lowpan.Version
		Newer bool
		Cmp   int
	}{
		"equal":              {A: 7, B: 7, Newer: false, Cmp: 0},
		"plain newer":        {A: 8, B: 7, Newer: true, Cmp: 1},
		"plain older":        {A: 7, B: 8, Newer: false, Cmp: -1},
		"0 after 65535":      {A: 0, B: 65535, Newer: true, Cmp: 1},
		"65535 before 0":     {A: 65535, B: 0, Newer: false, Cmp: -1},
		"across wrap":        {A: 100, B: 65000, Newer: true, Cmp: 1},
		"just under half":    {A: 32767, B: 0, Newer: true, Cmp: 1},
		"half apart":         {A: 32768, B: 0, Newer: false, Cmp: 0},
		"half apart reverse": {A: 0, B: 32768, Newer: false, Cmp: 0},
		"just over half":     {A: 32769, B: 0, Newer: false, Cmp: -1},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.Newer, tc.A.NewerThan(tc.B))
			assert.Equal(t, tc.Cmp, tc.A.Compare(tc.B))
		})
	}
}
