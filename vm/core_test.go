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

package vm_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/chuckries/rustvent-of-code-sub001/asm"
	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/davecgh/go-spew/spew"
)

type W []vm.Word

func setup(t testing.TB, prog W, opts ...vm.Option) *vm.Instance {
	t.Helper()
	i, err := vm.New(prog, opts...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return i
}

func setupAsm(t testing.TB, name, code string, opts ...vm.Option) *vm.Instance {
	t.Helper()
	prog, err := asm.Assemble(name, strings.NewReader(code))
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return setup(t, prog, opts...)
}

func equal(a, b []vm.Word) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func dump(i *vm.Instance) string {
	var b strings.Builder
	i.Dump(&b)
	return b.String()
}

// mem maps addresses to their expected value.
type mem map[vm.Word]vm.Word

func check(t *testing.T, testName string, i *vm.Instance, in, out W, m mem) bool {
	t.Helper()
	got, err := i.RunInputToHalt(in...)
	if err != nil {
		t.Errorf("%s: %+v\n%s", testName, err, dump(i))
		return false
	}
	if !equal(got, out) {
		t.Errorf("%v", fmt.Errorf("%s: output error: expected %d, got %d", testName, out, got))
		return false
	}
	for a, v := range m {
		if got, _ := i.Read(a); got != v {
			t.Errorf("%s: mem[%d]: expected %d, got %d\n%s", testName, a, v, got, dump(i))
			return false
		}
	}
	return true
}

var tests = [...]struct {
	name string
	prog W
	in   W
	out  W
	mem  mem
}{
	{"quine-add", W{1, 0, 0, 0, 99}, nil, nil, mem{0: 2}},
	{"mul-immediate", W{1002, 4, 3, 4, 33}, nil, nil, mem{4: 99}},
	{"negative-immediate", W{1101, 100, -1, 4, 0}, nil, nil, mem{4: 99}},
	{"day2-example", W{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, nil, nil, mem{0: 3500, 3: 70}},
	{"day2-square", W{2, 4, 4, 5, 99, 0}, nil, nil, mem{5: 9801}},
	{"day2-overwrite", W{1, 1, 1, 4, 99, 5, 6, 0, 99}, nil, nil, mem{0: 30, 4: 2}},
	{"cat", W{3, 0, 4, 0, 99}, W{42}, W{42}, mem{0: 42}},
	{"eq8-position", W{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, W{8}, W{1}, nil},
	{"eq8-position-false", W{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, W{7}, W{0}, nil},
	{"lt8-position", W{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, W{5}, W{1}, nil},
	{"lt8-position-false", W{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, W{8}, W{0}, nil},
	{"eq8-immediate", W{3, 3, 1108, -1, 8, 3, 4, 3, 99}, W{8}, W{1}, nil},
	{"lt8-immediate", W{3, 3, 1107, -1, 8, 3, 4, 3, 99}, W{9}, W{0}, nil},
	{"jz-position", W{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, W{0}, W{0}, nil},
	{"jz-position-nz", W{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, W{5}, W{1}, nil},
	{"jnz-immediate", W{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, W{0}, W{0}, nil},
	{"jnz-immediate-nz", W{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, W{-3}, W{1}, nil},
	{"large-product", W{1102, 34915192, 34915192, 7, 4, 7, 99, 0}, nil, W{1219070632396864}, nil},
	{"large-literal", W{104, 1125899906842624, 99}, nil, W{1125899906842624}, nil},
	{"relative-write", W{109, 10, 203, 0, 204, 0, 99}, W{-7}, W{-7}, mem{10: -7}},
	{"high-write", W{1101, 2, 3, 1000, 4, 1000, 99}, nil, W{5}, mem{1000: 5, 999: 0}},
	{"quine",
		W{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}, nil,
		W{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}, nil},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		i := setup(t, test.prog)
		check(t, test.name, i, test.in, test.out, test.mem)
		if !i.Halted() {
			t.Errorf("%s: machine not halted\n%s", test.name, dump(i))
		}
	}
}

// the larger day 5 example outputs 999, 1000 or 1001 for inputs below, equal
// to or above 8.
var cmp8 = W{3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
	1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
	999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99}

func TestCore_compare8(t *testing.T) {
	for in, out := range map[vm.Word]vm.Word{-5: 999, 7: 999, 8: 1000, 9: 1001, 1 << 40: 1001} {
		i := setup(t, cmp8)
		check(t, fmt.Sprintf("cmp8(%d)", in), i, W{in}, W{out}, nil)
	}
}

func TestCore_asm(t *testing.T) {
	// sum of 1..n using relative addressing for the accumulator
	i := setupAsm(t, "sum", `
			arb #100
			in n
	:loop		add @0 n @0
			add n #-1 n
			jnz n #loop
			out @0
			hlt
	:n		0`)
	check(t, "sum", i, W{100}, W{5050}, mem{100: 5050})
}

var faults = [...]struct {
	name string
	prog W
	in   W
	kind vm.ErrorKind
	pc   int
	word vm.Word
}{
	{"opcode", W{1105, 0, 0, 98}, nil, vm.InvalidOpcode, 3, 98},
	{"opcode-zero", W{0}, nil, vm.InvalidOpcode, 0, 0},
	{"opcode-negative", W{-1}, nil, vm.InvalidOpcode, 0, -1},
	{"run-off", W{1105, 0, 0}, nil, vm.InvalidOpcode, 3, 0},
	{"mode", W{30001, 0, 0, 0, 99}, nil, vm.InvalidMode, 0, 30001},
	{"mode-unused-slot", W{399, 0}, nil, vm.InvalidMode, 0, 399},
	{"write-immediate", W{11101, 1, 1, 3, 99}, nil, vm.WriteImmediate, 0, 11101},
	{"input-immediate", W{103, 0, 99}, W{5}, vm.WriteImmediate, 0, 103},
	{"negative-read", W{1, -1, 0, 0, 99}, nil, vm.NegativeAddress, 0, -1},
	{"negative-relative", W{204, -1, 99}, nil, vm.NegativeAddress, 0, -1},
	{"negative-write", W{21101, 1, 1, -3, 99}, nil, vm.NegativeAddress, 0, -3},
	{"negative-jump", W{1105, 1, -5}, nil, vm.NegativeAddress, 0, -5},
	{"write-range", W{1101, 1, 1, math.MaxInt64 - 1, 99}, nil, vm.AddressRange, 0, math.MaxInt64 - 1},
	{"write-range-relative", W{109, 10, 21101, 1, 1, vm.MaxMemory - 10, 99}, nil, vm.AddressRange, 2, vm.MaxMemory},
}

func TestCore_faults(t *testing.T) {
	for _, test := range faults {
		i := setup(t, test.prog, vm.Input(test.in...))
		_, err := i.RunToHalt()
		e, ok := err.(*vm.Error)
		if !ok {
			t.Errorf("%s: expected *vm.Error, got %#v", test.name, err)
			continue
		}
		if e.Kind != test.kind || e.PC != test.pc || e.Word != test.word {
			t.Errorf("%s: expected %v @%d (%d), got %s", test.name, test.kind, test.pc, test.word, spew.Sdump(e))
		}
		if !i.Halted() || i.Err() != err {
			t.Errorf("%s: faulted machine not halted with its error", test.name)
		}
		// the faulting instruction must not have modified the machine
		if i.PC != test.pc || !equal(i.Mem, test.prog) || i.PendingInput() != len(test.in) {
			t.Errorf("%s: torn state after fault:\n%s", test.name, dump(i))
		}
		// and the fault is sticky
		if st, err2 := i.Step(); st != vm.Halted || err2 != err {
			t.Errorf("%s: expected sticky fault, got %v, %v", test.name, st, err2)
		}
	}
}

func TestDecode(t *testing.T) {
	op, modes, err := vm.Decode(1002)
	if err != nil || op != vm.OpMul || modes != [3]vm.Mode{vm.Position, vm.Immediate, vm.Position} {
		t.Fatalf("Decode(1002): got %v %v %v", op, modes, err)
	}
	op, modes, err = vm.Decode(21101)
	if err != nil || op != vm.OpAdd || modes != [3]vm.Mode{vm.Immediate, vm.Immediate, vm.Relative} {
		t.Fatalf("Decode(21101): got %v %v %v", op, modes, err)
	}
	if w := vm.Encode(vm.OpAdd, vm.Immediate, vm.Immediate, vm.Relative); w != 21101 {
		t.Fatalf("Encode: expected 21101, got %d", w)
	}
	for _, w := range []vm.Word{0, 10, 42, 100, -99, 399, 40001} {
		if _, _, err := vm.Decode(w); err == nil {
			t.Errorf("Decode(%d): unexpected nil error", w)
		}
	}
	for op := vm.Opcode(0); op < 100; op++ {
		if !op.Valid() {
			continue
		}
		o, ok := vm.LookupOpcode(op.String())
		if !ok || o != op {
			t.Errorf("LookupOpcode(%q): got %v, %v", op.String(), o, ok)
		}
	}
}

func BenchmarkRun_countdown(b *testing.B) {
	i := setupAsm(b, "countdown", `
			add #100000 #0 n
	:loop		add n #-1 n
			jnz n #loop
			out n
			hlt
	:n		0`)
	b.ResetTimer()
	for c := 0; c < b.N; c++ {
		i.Reset()
		if _, err := i.RunToHalt(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_quine(b *testing.B) {
	i := setup(b, tests[len(tests)-1].prog)
	for c := 0; c < b.N; c++ {
		i.Reset()
		i.RunToHalt()
	}
}
