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

// Package vm implements the IntCode virtual machine used by the 2019 Advent of
// Code puzzles.
//
// An Instance is a small stored-program computer: a growable memory of 64 bits
// words, an instruction pointer, a relative base register and a pair of FIFO
// queues for input and output. Programs are loaded from their comma separated
// text form with Load or ReadProgram, or built directly from a Word slice with
// New.
//
// Execution is cooperative. Step executes a single instruction and reports
// whether the machine can keep going, needs input, has just produced a value
// or has halted. Run calls Step until the machine suspends:
//
//	i, _ := vm.New(program)
//	for {
//		st, v, err := i.Run()
//		if err != nil {
//			return err
//		}
//		switch st {
//		case vm.NeedsInput:
//			i.PushInput(next())
//		case vm.Produced:
//			i.ReadOutput()
//			use(v)
//		case vm.Halted:
//			return nil
//		}
//	}
//
// The RunInput, RunToHalt and RunInputToHalt helpers cover the common driver
// loops. Text based programs are better driven with the helpers in the ascii
// package.
//
// Decode errors, negative addresses and protocol misuse are reported as *Error
// values. A machine that faulted is halted for good and keeps returning the
// same error until Reset is called.
package vm
