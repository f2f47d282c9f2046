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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chuckries/rustvent-of-code-sub001/internal/ici"
	"github.com/chuckries/rustvent-of-code-sub001/vm"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (prog []vm.Word, err error) {
	p := newParser()
	if err = p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.i[:p.end], nil
}

func writeParam(ew io.Writer, m vm.Mode, v vm.Word) {
	switch m {
	case vm.Immediate:
		ew.Write([]byte{'#'})
	case vm.Relative:
		ew.Write([]byte{'@'})
	}
	io.WriteString(ew, strconv.FormatInt(int64(v), 10))
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given slice to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Words that do not decode to a valid instruction are written as a .dat
// directive. Parameters missing at the end of the slice are written as "???".
func Disassemble(mem []vm.Word, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)

	word := mem[pc]
	op, modes, derr := vm.Decode(word)
	if derr != nil {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(word), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, op.String())
	pc++
	for k := 0; k < op.Params(); k++ {
		ew.Write([]byte{' '})
		if pc >= len(mem) {
			io.WriteString(ew, "???")
			continue
		}
		writeParam(ew, modes[k], mem[pc])
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Word, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
