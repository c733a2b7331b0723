// Copyright 2019 Anapaya Systems
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

package serrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

type testErrType struct {
	msg string
}

func (e *testErrType) Error() string {
	return e.msg
}

func TestWrapNoStack(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		err := serrors.New("simple err")
		errWithCtx := serrors.WrapNoStack("error", err, "someCtx", "someValue")
		assert.ErrorIs(t, errWithCtx, err)
		assert.ErrorIs(t, errWithCtx, errWithCtx)
	})
	t.Run("As", func(t *testing.T) {
		err := &testErrType{msg: "test err"}
		errWithCtx := serrors.WrapNoStack("error", err, "someCtx", "someVal")
		var errAs *testErrType
		require.True(t, errors.As(errWithCtx, &errAs))
		assert.Equal(t, err, errAs)
	})
}

func TestJoinNoStack(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		err := serrors.New("simple err")
		msg := errors.New("msg err")
		joined := serrors.JoinNoStack(msg, err, "someCtx", "someValue")
		assert.ErrorIs(t, joined, err)
		assert.ErrorIs(t, joined, msg)
		assert.ErrorIs(t, joined, joined)
	})
	t.Run("sentinel only", func(t *testing.T) {
		sentinel := errors.New("full")
		joined := serrors.JoinNoStack(sentinel, nil, "capacity", 4)
		assert.ErrorIs(t, joined, sentinel)
		assert.Equal(t, "full {capacity=4}", joined.Error())
	})
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, serrors.JoinNoStack(nil, nil))
		assert.NoError(t, serrors.Join(nil, nil))
	})
}

func TestWrap(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		err := serrors.New("simple err")
		wrapped := serrors.Wrap("msg", err, "someCtx", "someValue")
		assert.ErrorIs(t, wrapped, err)
		assert.ErrorIs(t, wrapped, wrapped)
	})
	t.Run("As", func(t *testing.T) {
		err := &testErrType{msg: "test err"}
		wrapped := serrors.Wrap("msg", err, "someCtx", "someValue")
		var errAs *testErrType
		require.True(t, errors.As(wrapped, &errAs))
		assert.Equal(t, err, errAs)
	})
	t.Run("message", func(t *testing.T) {
		wrapped := serrors.Wrap("outer", errors.New("inner"), "b", 2, "a", 1)
		assert.Equal(t, "outer {a=1; b=2}: inner", wrapped.Error())
	})
}

func TestStackTrace(t *testing.T) {
	type stackTracer interface {
		StackTrace() serrors.StackTrace
	}
	t.Run("New has stack", func(t *testing.T) {
		err := serrors.New("with stack")
		var st stackTracer
		require.True(t, errors.As(err, &st))
		assert.NotEmpty(t, st.StackTrace())
	})
	t.Run("NoStack variants have none", func(t *testing.T) {
		err := serrors.WrapNoStack("no stack", errors.New("base"))
		var st stackTracer
		require.True(t, errors.As(err, &st))
		assert.Empty(t, st.StackTrace())
	})
}

func TestList(t *testing.T) {
	var l serrors.List
	assert.NoError(t, l.ToError())
	l = append(l, errors.New("a"), serrors.New("b"))
	assert.Equal(t, "[ a; b ]", l.ToError().Error())

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, enc.AddArray("errs", l))
	assert.Len(t, enc.Fields["errs"], 2)
}
