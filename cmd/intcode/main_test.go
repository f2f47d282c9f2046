// This file is part of rustvent-of-code - https://github.com/chuckries/rustvent-of-code-sub001
//
// Copyright 2019 The rustvent-of-code Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strings"
	"testing"

	"github.com/chuckries/rustvent-of-code-sub001/ascii"
	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	var p patchList
	require.NoError(t, p.Set("1=12,2=2"))
	require.NoError(t, p.Set(" 5 = -1"))
	assert.Equal(t, patchList{{1, 12}, {2, 2}, {5, -1}}, p)
	assert.Equal(t, "1=12,2=2,5=-1", p.String())
	assert.Error(t, p.Set("12"))
	assert.Error(t, p.Set("x=1"))
	assert.Error(t, p.Set("1=y"))
	assert.Len(t, p.options(), 3)

	var w wordList
	require.NoError(t, w.Set("1,2"))
	require.NoError(t, w.Set("-3"))
	assert.Equal(t, wordList{1, 2, -3}, w)
	assert.Equal(t, "1,2,-3", w.String())
	assert.Error(t, w.Set("a"))
}

func newVMTest(t *testing.T, prog ...vm.Word) *vm.Instance {
	t.Helper()
	i, err := vm.New(prog)
	require.NoError(t, err)
	return i
}

func TestExecute(t *testing.T) {
	// doubles its input until it reads 0
	prog := []vm.Word{3, 15, 1006, 15, 14, 1002, 15, 2, 15, 4, 15, 1105, 1, 0, 99, 0}
	var b strings.Builder
	in := ascii.NewLineReader(strings.NewReader("1\n\n21,0\n"))
	require.NoError(t, execute(newVMTest(t, prog...), 0, in, &b))
	assert.Equal(t, "2\n42\n", b.String())

	b.Reset()
	err := execute(newVMTest(t, prog...), 0, ascii.NewLineReader(strings.NewReader("3\n")), &b)
	assert.True(t, vm.IsKind(err, vm.InputUnderflow), "got %v", err)
	assert.Equal(t, "6\n", b.String())

	err = execute(newVMTest(t, prog...), 0, ascii.NewLineReader(strings.NewReader("x\n")), &b)
	assert.Error(t, err)

	err = execute(newVMTest(t, 98), 0, ascii.NewLineReader(strings.NewReader("")), &b)
	assert.True(t, vm.IsKind(err, vm.InvalidOpcode), "got %v", err)
}

func TestExecute_budget(t *testing.T) {
	// jump to self
	i := newVMTest(t, 1105, 1, 0)
	err := execute(i, 1000, ascii.NewLineReader(strings.NewReader("")), &strings.Builder{})
	assert.Equal(t, errBudget, errors.Cause(err))
	assert.Equal(t, int64(1000), i.InstructionCount())
}
