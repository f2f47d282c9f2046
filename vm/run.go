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

// RunInput pushes the given values to the back of the input queue, then runs
// the machine until it produces a value or halts. This is the driver used by
// pipelines where each stage consumes one value and produces one value per
// round.
//
// RunInput returns an InputOnHalted error if the machine is already halted,
// and an InputUnderflow error if the machine needs more input before it
// produces anything.
func (i *Instance) RunInput(v ...Word) (Status, Word, error) {
	if i.halted {
		if i.err != nil {
			return Halted, 0, i.err
		}
		return Halted, 0, &Error{Kind: InputOnHalted, PC: i.PC}
	}
	i.PushInput(v...)
	st, w, err := i.Run()
	if err == nil && st == NeedsInput {
		err = &Error{Kind: InputUnderflow, PC: i.PC}
	}
	return st, w, err
}

// RunToHalt runs the machine until it halts and returns all the values it
// produced, in order. Values already in the output queue are returned first.
//
// If the machine needs input, RunToHalt returns an InputUnderflow error and
// leaves the output queue untouched.
func (i *Instance) RunToHalt() ([]Word, error) {
	for {
		st, _, err := i.Run()
		if err != nil {
			return nil, err
		}
		switch st {
		case NeedsInput:
			return nil, &Error{Kind: InputUnderflow, PC: i.PC}
		case Halted:
			return i.DrainOutput(), nil
		}
	}
}

// RunInputToHalt pushes the given values to the input queue and runs the
// machine until it halts. It returns all the values it produced.
//
// It fails with InputOnHalted if values are supplied to a halted machine, and
// with InputUnderflow if the machine needs more input than supplied.
func (i *Instance) RunInputToHalt(v ...Word) ([]Word, error) {
	if i.halted && len(v) > 0 {
		if i.err != nil {
			return nil, i.err
		}
		return nil, &Error{Kind: InputOnHalted, PC: i.PC}
	}
	i.PushInput(v...)
	return i.RunToHalt()
}
