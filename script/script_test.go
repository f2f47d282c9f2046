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

package script_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chuckries/rustvent-of-code-sub001/script"
	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echo copies input to output and halts on '.'.
var echo = []vm.Word{3, 100, 1008, 100, 46, 101, 1005, 101, 14, 4, 100, 1105, 1, 0, 99}

func run(t *testing.T, prog []vm.Word, src string) (string, error) {
	t.Helper()
	i, err := vm.New(prog)
	require.NoError(t, err)
	var b strings.Builder
	r := script.New(i, &b)
	defer r.Close()
	err = r.Run(context.Background(), t.Name(), strings.NewReader(src))
	return b.String(), err
}

var tests = []struct {
	name string
	prog []vm.Word
	src  string
	out  string
}{
	{"patch", []vm.Word{1, 0, 0, 0, 99}, `
local ic = require("intcode")
ic.poke(1, 4)
ic.poke(2, 4)
local out = ic.run_to_halt()
print(#out, ic.peek(0), ic.halted())
`, "0\t198\ttrue\n"},
	{"suspend", []vm.Word{3, 0, 4, 0, 99}, `
local ic = require("intcode")
print(ic.run())
ic.push(7)
print(ic.run())
print(#ic.outputs(), ic.output())
print(ic.run(), ic.pc())
`, "needs input\nproduced\t7\n0\tnil\nhalted\t4\n"},
	{"ascii", echo, `
local ic = require("intcode")
ic.write_line("hi")
print(ic.read_line())
print(ic.read_line())
ic.push(46)
print(ic.run(), ic.halted())
print(ic.read_line())
`, "hi\nnil\tneeds input\t\nhalted\ttrue\nnil\teof\n"},
	{"prompt", []vm.Word{104, 'a', 104, 'b', 3, 50, 104, 'c', 104, 10, 99}, `
local ic = require("intcode")
local line, st, text = ic.read_line()
print(line, st, text)
ic.push(1)
print(ic.read_line())
print(ic.read_line())
`, "nil\tneeds input\tab\nc\nnil\teof\n"},
	{"large", []vm.Word{104, 'h', 104, 'p', 104, 1000, 104, 10, 99}, `
local ic = require("intcode")
print(ic.read_line())
print(ic.read_line())
`, "1000\thp\n\n"},
	{"reset", []vm.Word{1101, 2, 3, 0, 99}, `
local ic = require("intcode")
ic.run_to_halt()
print(ic.peek(0))
ic.reset()
print(ic.peek(0), ic.halted())
`, "5\n1101\tfalse\n"},
	{"loop", []vm.Word{3, 0, 1002, 0, 2, 0, 4, 0, 1105, 1, 0}, `
local ic = require("intcode")
local sum = 0
for k = 1, 10 do
	ic.push(k)
	local st, v = ic.run()
	sum = sum + v
end
print(sum, #ic.outputs())
`, "110\t0\n"},
}

func TestRunner(t *testing.T) {
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.prog, test.src)
			require.NoError(t, err)
			assert.Equal(t, test.out, out)
		})
	}
}

func TestRunner_errors(t *testing.T) {
	_, err := run(t, []vm.Word{98}, `require("intcode").run()`)
	assert.True(t, vm.IsKind(err, vm.InvalidOpcode), "got %v", err)

	_, err = run(t, []vm.Word{3, 0, 99}, `require("intcode").run_to_halt()`)
	assert.True(t, vm.IsKind(err, vm.InputUnderflow), "got %v", err)

	_, err = run(t, []vm.Word{99}, `require("intcode").poke(-1, 0)`)
	assert.True(t, vm.IsKind(err, vm.NegativeAddress), "got %v", err)

	_, err = run(t, []vm.Word{104, 'a', 99}, `require("intcode").read_line()`)
	assert.True(t, vm.IsKind(err, vm.UnexpectedHalt), "got %v", err)
	assert.Contains(t, err.Error(), `"a"`)

	_, err = run(t, []vm.Word{99}, `error("boom")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	_, err = run(t, []vm.Word{99}, `this is not lua`)
	assert.Error(t, err)
}

func TestRunner_context(t *testing.T) {
	i, err := vm.New([]vm.Word{99})
	require.NoError(t, err)
	r := script.New(i, os.Stdout)
	defer r.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err = r.Run(ctx, "spin", strings.NewReader(`while true do end`))
	assert.Error(t, err)
}

func TestRunner_RunFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "day2.lua")
	require.NoError(t, os.WriteFile(fn, []byte(`
local ic = require("intcode")
ic.poke(1, 9)
ic.poke(2, 10)
ic.run_to_halt()
print(ic.peek(0))
`), 0644))
	i, err := vm.New([]vm.Word{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50})
	require.NoError(t, err)
	var b strings.Builder
	r := script.New(i, &b)
	defer r.Close()
	require.NoError(t, r.RunFile(context.Background(), fn))
	assert.Equal(t, "3500\n", b.String())

	assert.Error(t, r.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua")))
}
