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
	"strconv"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"
)

// Status reports why Step or Run returned.
type Status int

// Machine status values. Running is only ever returned by Step.
const (
	Running    Status = iota // instruction completed, the machine can keep going
	NeedsInput               // input instruction with an empty input queue; PC unchanged
	Produced                 // a value was pushed to the output queue
	Halted                   // halt instruction executed, or the machine faulted
)

var statusNames = [...]string{"running", "needs input", "produced", "halted"}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// abort halts the machine and records err as its terminal error.
func (i *Instance) abort(err error) error {
	i.halted = true
	i.err = err
	log.Debugf("machine fault: %v", err)
	return err
}

// trace formats the instruction at PC for the trace log.
func (i *Instance) trace(op Opcode, modes [3]Mode) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(i.PC))
	b.WriteByte('\t')
	b.WriteString(op.String())
	for k := 0; k < op.Params(); k++ {
		b.WriteByte(' ')
		switch modes[k] {
		case Immediate:
			b.WriteByte('#')
		case Relative:
			b.WriteByte('@')
		}
		b.WriteString(strconv.FormatInt(int64(i.param(k)), 10))
	}
	b.WriteString("\trb=")
	b.WriteString(strconv.FormatInt(int64(i.RelBase), 10))
	return b.String()
}

// Step executes a single instruction.
//
// Step returns Running if the instruction completed and more can be executed,
// NeedsInput if an input instruction found the input queue empty, Produced if
// an output instruction pushed a value to the output queue and Halted if the
// machine is halted.
//
// On NeedsInput, the PC still points at the input instruction: it will be
// executed again by the next call to Step.
//
// If the instruction faults, the machine is halted and the error is returned
// by this and every subsequent call. No state is modified by the faulting
// instruction.
func (i *Instance) Step() (st Status, err error) {
	if i.halted {
		return Halted, i.err
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case *Error:
				err = e
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d, rb=%d", i.PC, len(i.Mem), i.RelBase)
			default:
				panic(e)
			}
			st, err = Halted, i.abort(err)
		}
	}()

	op, modes, err := Decode(i.load(Word(i.PC)))
	if err != nil {
		err.(*Error).PC = i.PC
		return Halted, i.abort(err)
	}
	if log.Level() <= btclog.LevelTrace {
		log.Trace(i.trace(op, modes))
	}

	switch op {
	case OpAdd:
		a, b, dst := i.value(0, modes[0]), i.value(1, modes[1]), i.addr(2, modes[2])
		i.store(dst, a+b)
		i.PC += 4
	case OpMul:
		a, b, dst := i.value(0, modes[0]), i.value(1, modes[1]), i.addr(2, modes[2])
		i.store(dst, a*b)
		i.PC += 4
	case OpIn:
		dst := i.addr(0, modes[0])
		v, ok := i.popInput()
		if !ok {
			return NeedsInput, nil
		}
		i.store(dst, v)
		i.PC += 2
	case OpOut:
		i.pushOutput(i.value(0, modes[0]))
		i.PC += 2
		i.insCount++
		return Produced, nil
	case OpJnz:
		c, to := i.value(0, modes[0]), i.value(1, modes[1])
		if c != 0 {
			i.jump(to)
		} else {
			i.PC += 3
		}
	case OpJz:
		c, to := i.value(0, modes[0]), i.value(1, modes[1])
		if c == 0 {
			i.jump(to)
		} else {
			i.PC += 3
		}
	case OpLt:
		a, b, dst := i.value(0, modes[0]), i.value(1, modes[1]), i.addr(2, modes[2])
		var v Word
		if a < b {
			v = 1
		}
		i.store(dst, v)
		i.PC += 4
	case OpEq:
		a, b, dst := i.value(0, modes[0]), i.value(1, modes[1]), i.addr(2, modes[2])
		var v Word
		if a == b {
			v = 1
		}
		i.store(dst, v)
		i.PC += 4
	case OpArb:
		i.RelBase += i.value(0, modes[0])
		i.PC += 2
	case OpHalt:
		i.halted = true
		i.insCount++
		return Halted, nil
	}
	i.insCount++
	return Running, nil
}

func (i *Instance) jump(to Word) {
	if to < 0 {
		i.fault(NegativeAddress, to)
	}
	i.PC = int(to)
}

// Run executes instructions until the machine suspends: it returns NeedsInput
// when an input instruction finds the input queue empty, Produced along with
// the value when an output instruction completes and Halted when the machine
// halts.
//
// Produced values are also left in the output queue; callers that only use
// the value returned by Run may discard them with DrainOutput.
//
// Calling Run on a halted machine returns Halted immediately, along with the
// error that halted it, if any.
func (i *Instance) Run() (Status, Word, error) {
	for {
		st, err := i.Step()
		if err != nil {
			return st, 0, err
		}
		switch st {
		case Running:
			continue
		case Produced:
			return st, i.output[len(i.output)-1], nil
		default:
			return st, 0, nil
		}
	}
}
