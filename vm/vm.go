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

import (
	"io"
	"strconv"

	"github.com/chuckries/rustvent-of-code-sub001/internal/ici"
)

// Word is the raw type stored in a memory location. Addresses, opcodes, data
// and I/O values are all Words.
type Word int64

// Instance represents an IntCode VM instance.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	RelBase  Word   // Relative base register
	Mem      []Word // Working memory. Grows as addresses are touched.
	initial  []Word
	input    []Word
	output   []Word
	halted   bool
	err      error
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Input queues the given values as if they had been pushed with PushInput
// before the first instruction runs.
func Input(v ...Word) Option {
	return func(i *Instance) error {
		i.PushInput(v...)
		return nil
	}
}

// MemSize pre-allocates the working memory to at least size words. Memory
// still grows on demand past that size; this only avoids repeated growth for
// programs known to use high addresses. size cannot exceed MaxMemory.
func MemSize(size int) Option {
	return func(i *Instance) error {
		if size < 0 {
			return &Error{Kind: NegativeAddress, PC: i.PC, Word: Word(size)}
		}
		if size > MaxMemory {
			return &Error{Kind: AddressRange, PC: i.PC, Word: Word(size)}
		}
		i.grow(size - 1)
		return nil
	}
}

// Patch writes v at address addr of the working memory. Patches are applied
// after loading and are undone by Reset.
//
// Day 2 uses this to set the noun and verb before the first run:
//
//	vm.New(program, vm.Patch(1, 12), vm.Patch(2, 2))
func Patch(addr, v Word) Option {
	return func(i *Instance) error {
		return i.Write(addr, v)
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new IntCode machine running the given program.
//
// The program slice is copied: it is kept as the initial memory image restored
// by Reset, and the machine works on its own copy in Mem.
//
// Options will be set by calling SetOptions.
func New(program []Word, opts ...Option) (*Instance, error) {
	i := &Instance{
		initial: append([]Word(nil), program...),
	}
	i.Mem = append(make([]Word, 0, len(program)), program...)
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Reset restores the machine to its freshly constructed state: memory is
// reloaded from the initial program, PC and RelBase are zeroed, the halted
// flag and any error are cleared and both I/O queues are emptied.
//
// Options passed to New are not re-applied.
func (i *Instance) Reset() {
	i.Mem = append(i.Mem[:0], i.initial...)
	i.PC = 0
	i.RelBase = 0
	i.input = i.input[:0]
	i.output = i.output[:0]
	i.halted = false
	i.err = nil
	i.insCount = 0
}

// Program returns a copy of the initial memory image.
func (i *Instance) Program() []Word {
	return append([]Word(nil), i.initial...)
}

// Halted returns true if the machine executed a halt instruction or faulted.
func (i *Instance) Halted() bool {
	return i.halted
}

// Err returns the fault that halted the machine, if any.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed since the
// machine was created or last Reset.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

func dumpSlice(w *ici.ErrWriter, a []Word) error {
	for k, v := range a {
		if k > 0 {
			w.Write([]byte{','})
		}
		io.WriteString(w, strconv.FormatInt(int64(v), 10))
	}
	return w.Err
}

// Dump writes the machine registers, I/O queues and memory to the specified
// io.Writer, one per line.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	io.WriteString(ew, "pc: "+strconv.Itoa(i.PC)+"\n")
	io.WriteString(ew, "rb: "+strconv.FormatInt(int64(i.RelBase), 10)+"\n")
	io.WriteString(ew, "halted: "+strconv.FormatBool(i.halted)+"\n")
	io.WriteString(ew, "in: ")
	dumpSlice(ew, i.input)
	io.WriteString(ew, "\nout: ")
	dumpSlice(ew, i.output)
	io.WriteString(ew, "\nmem: ")
	dumpSlice(ew, i.Mem)
	_, err := ew.Write([]byte{'\n'})
	return err
}
