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

package vm

// Opcode is the operation part of an instruction word (the word modulo 100).
type Opcode Word

// IntCode opcodes.
const (
	OpAdd  Opcode = 1  // mem[W2] = R0 + R1
	OpMul  Opcode = 2  // mem[W2] = R0 * R1
	OpIn   Opcode = 3  // mem[W0] = next input
	OpOut  Opcode = 4  // output R0
	OpJnz  Opcode = 5  // if R0 != 0 jump to R1
	OpJz   Opcode = 6  // if R0 == 0 jump to R1
	OpLt   Opcode = 7  // mem[W2] = R0 < R1
	OpEq   Opcode = 8  // mem[W2] = R0 == R1
	OpArb  Opcode = 9  // RelBase += R0
	OpHalt Opcode = 99 // halt
)

// Mode is a parameter mode.
type Mode Word

// Parameter modes.
const (
	Position  Mode = iota // parameter is an address
	Immediate             // parameter is the value itself
	Relative              // parameter is an offset from RelBase
)

type opInfo struct {
	name   string
	params int
	write  int // index of the written parameter, -1 if none
}

var opcodes = [100]opInfo{
	OpAdd:  {"add", 3, 2},
	OpMul:  {"mul", 3, 2},
	OpIn:   {"in", 1, 0},
	OpOut:  {"out", 1, -1},
	OpJnz:  {"jnz", 2, -1},
	OpJz:   {"jz", 2, -1},
	OpLt:   {"lt", 3, 2},
	OpEq:   {"eq", 3, 2},
	OpArb:  {"arb", 1, -1},
	OpHalt: {"hlt", 0, -1},
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for op, v := range opcodes {
		if v.name != "" {
			opcodeIndex[v.name] = Opcode(op)
		}
	}
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	return op >= 0 && int(op) < len(opcodes) && opcodes[op].name != ""
}

// String returns the assembler mnemonic of op.
func (op Opcode) String() string {
	if !op.Valid() {
		return "???"
	}
	return opcodes[op].name
}

// Params returns the number of parameters taken by op.
func (op Opcode) Params() int {
	if !op.Valid() {
		return 0
	}
	return opcodes[op].params
}

// WriteParam returns the index of the parameter op writes to, or -1 if op
// does not write to memory.
func (op Opcode) WriteParam() int {
	if !op.Valid() {
		return -1
	}
	return opcodes[op].write
}

// LookupOpcode returns the opcode for the given assembler mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Decode splits an instruction word into its opcode and the modes of its
// three parameter slots. Mode digits are checked for all three slots, whether
// the opcode uses them or not.
func Decode(w Word) (op Opcode, modes [3]Mode, err error) {
	op = Opcode(w % 100)
	if !op.Valid() {
		return op, modes, &Error{Kind: InvalidOpcode, Word: w}
	}
	m := w / 100
	for k := range modes {
		d := Mode(m % 10)
		if d > Relative {
			return op, modes, &Error{Kind: InvalidMode, Word: w}
		}
		modes[k] = d
		m /= 10
	}
	return op, modes, nil
}

// Encode builds an instruction word from an opcode and parameter modes. It is
// the inverse of Decode.
func Encode(op Opcode, modes ...Mode) Word {
	w := Word(op)
	scale := Word(100)
	for _, m := range modes {
		w += Word(m) * scale
		scale *= 10
	}
	return w
}
