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

package config_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
	"github.com/sixlowpan/edgerouter/private/config"
)

type leaf struct {
	config.NoDefaulter
	config.NoValidator
	Value int `toml:"value"`
}

func (l *leaf) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, "\nvalue = 1\n")
}

func (l *leaf) ConfigName() string { return "leaf" }

type parent struct {
	ID   string `toml:"id"`
	Leaf leaf   `toml:"leaf"`
}

func (p *parent) Sample(dst io.Writer, path config.Path, ctx config.CtxMap) {
	config.WriteString(dst, "\nid = \""+ctx[config.ID]+"\"\n")
	config.WriteSample(dst, path, ctx, &p.Leaf)
}

func (p *parent) ConfigName() string { return "parent" }

func TestWriteSample(t *testing.T) {
	var buf bytes.Buffer
	var p parent
	config.WriteSample(&buf, nil, config.CtxMap{config.ID: "x"}, &p)
	assert.Equal(t, "\n[parent]\n    id = \"x\"\n\n    [parent.leaf]\n        value = 1\n",
		buf.String())

	var decoded struct {
		Parent parent `toml:"parent"`
	}
	require.NoError(t, config.Decode(buf.Bytes(), &decoded))
	assert.Equal(t, "x", decoded.Parent.ID)
	assert.Equal(t, 1, decoded.Parent.Leaf.Value)
}

func TestPathExtend(t *testing.T) {
	base := config.Path{"a"}
	ext := base.Extend("b")
	assert.Equal(t, config.Path{"a", "b"}, ext)
	assert.Equal(t, config.Path{"a"}, base)
}

type failing struct{ err error }

func (f failing) Validate() error { return f.err }

func TestValidateAll(t *testing.T) {
	errBad := serrors.New("bad")
	assert.NoError(t, config.ValidateAll(failing{}, config.NoValidator{}))
	assert.ErrorIs(t, config.ValidateAll(failing{}, failing{err: errBad}), errBad)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.toml")
	require.NoError(t, os.WriteFile(valid, []byte("id = \"a\"\n[leaf]\nvalue = 3\n"), 0o600))
	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("other = 1\n"), 0o600))

	var p parent
	require.NoError(t, config.LoadFile(valid, &p))
	assert.Equal(t, 3, p.Leaf.Value)
	assert.Error(t, config.LoadFile(unknown, &p))
	assert.Error(t, config.LoadFile(filepath.Join(dir, "missing.toml"), &p))
}
