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

// Memory behaves as an infinite Word array: reads past the end of Mem return
// 0 and writes past the end extend it with zero fill. Negative addresses are
// always an error, and so are writes at or past MaxMemory.

// MaxMemory is the size, in words, memory can grow to.
const MaxMemory = 1 << 26

// Read returns the value at address addr.
func (i *Instance) Read(addr Word) (Word, error) {
	if addr < 0 {
		return 0, &Error{Kind: NegativeAddress, PC: i.PC, Word: addr}
	}
	return i.load(addr), nil
}

// Write stores v at address addr, extending memory as needed.
func (i *Instance) Write(addr, v Word) error {
	if addr < 0 {
		return &Error{Kind: NegativeAddress, PC: i.PC, Word: addr}
	}
	if addr >= MaxMemory {
		return &Error{Kind: AddressRange, PC: i.PC, Word: addr}
	}
	i.store(addr, v)
	return nil
}

// grow extends Mem with zeroes so that addr is a valid index.
func (i *Instance) grow(addr int) {
	if n := addr + 1 - len(i.Mem); n > 0 {
		i.Mem = append(i.Mem, make([]Word, n)...)
	}
}

// fault aborts the current instruction. The panic is recovered by Step.
func (i *Instance) fault(kind ErrorKind, w Word) {
	panic(&Error{Kind: kind, PC: i.PC, Word: w})
}

func (i *Instance) load(addr Word) Word {
	if addr < 0 {
		i.fault(NegativeAddress, addr)
	}
	if addr >= Word(len(i.Mem)) {
		return 0
	}
	return i.Mem[addr]
}

func (i *Instance) store(addr, v Word) {
	if addr < 0 {
		i.fault(NegativeAddress, addr)
	}
	if addr >= MaxMemory {
		i.fault(AddressRange, addr)
	}
	i.grow(int(addr))
	i.Mem[addr] = v
}

// param returns the raw value of parameter k of the current instruction.
func (i *Instance) param(k int) Word {
	return i.load(Word(i.PC + 1 + k))
}

// value resolves read parameter k according to mode m.
func (i *Instance) value(k int, m Mode) Word {
	p := i.param(k)
	switch m {
	case Immediate:
		return p
	case Relative:
		return i.load(i.RelBase + p)
	default:
		return i.load(p)
	}
}

// addr resolves write parameter k according to mode m and returns the
// effective address.
func (i *Instance) addr(k int, m Mode) Word {
	p := i.param(k)
	var a Word
	switch m {
	case Position:
		a = p
	case Relative:
		a = i.RelBase + p
	default:
		i.fault(WriteImmediate, i.load(Word(i.PC)))
	}
	if a < 0 {
		i.fault(NegativeAddress, a)
	}
	return a
}
