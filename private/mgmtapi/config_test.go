// Copyright 2021 Anapaya Systems
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

package mgmtapi_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"

	api "github.com/sixlowpan/edgerouter/private/mgmtapi"
	apitest "github.com/sixlowpan/edgerouter/private/mgmtapi/mgmtapitest"
)

func TestConfigSample(t *testing.T) {
	var sample bytes.Buffer
	var cfg api.Config
	cfg.Sample(&sample, nil, nil)
	apitest.InitConfig(&cfg)
	err := toml.NewDecoder(bytes.NewReader(sample.Bytes())).DisallowUnknownFields().Decode(&cfg)
	assert.NoError(t, err)
	apitest.CheckConfig(t, &cfg)
}

func TestConfigValidate(t *testing.T) {
	testCases := map[string]struct {
		Addr         string
		ErrAssertion assert.ErrorAssertionFunc
	}{
		"empty":     {Addr: "", ErrAssertion: assert.NoError},
		"port only": {Addr: ":8080", ErrAssertion: assert.NoError},
		"ipv6":      {Addr: "[::1]:8080", ErrAssertion: assert.NoError},
		"garbage":   {Addr: "not an address", ErrAssertion: assert.Error},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := api.Config{Addr: tc.Addr}
			tc.ErrAssertion(t, cfg.Validate())
		})
	}
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	api.ErrorResponse(rec, api.Problem{
		Status: http.StatusConflict,
		Title:  "full",
		Type:   api.StringRef(api.Conflict),
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"type":"/problems/conflict","title":"full","status":409}`,
		rec.Body.String())
}
