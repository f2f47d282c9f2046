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
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies machine errors.
type ErrorKind int

// Error kinds. Decode and address errors are fatal and halt the machine.
// Protocol errors are returned by the driver helpers and do not change the
// machine state.
const (
	InvalidOpcode   ErrorKind = iota + 1 // unknown opcode
	InvalidMode                          // parameter mode other than 0, 1 or 2
	WriteImmediate                       // write parameter in immediate mode
	NegativeAddress                      // negative effective address
	InputOnHalted                        // input pushed to a halted machine
	UnexpectedHalt                       // machine halted while a caller expected more output
	InputUnderflow                       // machine needs more input than supplied
	AddressRange                         // write at or past MaxMemory
)

var kindNames = [...]string{
	InvalidOpcode:   "invalid opcode",
	InvalidMode:     "invalid parameter mode",
	WriteImmediate:  "write parameter in immediate mode",
	NegativeAddress: "negative address",
	InputOnHalted:   "input on halted machine",
	UnexpectedHalt:  "unexpected halt",
	InputUnderflow:  "input underflow",
	AddressRange:    "address out of range",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Fatal returns true for decode and address errors.
func (k ErrorKind) Fatal() bool {
	switch k {
	case InvalidOpcode, InvalidMode, WriteImmediate, NegativeAddress, AddressRange:
		return true
	}
	return false
}

// Error is the error type returned for machine faults and driver protocol
// errors.
type Error struct {
	Kind ErrorKind
	PC   int  // address of the instruction being executed
	Word Word // offending opcode word or address, depending on Kind
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidOpcode, InvalidMode, WriteImmediate, NegativeAddress, AddressRange:
		return fmt.Sprintf("%v %d @pc=%d", e.Kind, e.Word, e.PC)
	default:
		return fmt.Sprintf("%v @pc=%d", e.Kind, e.PC)
	}
}

// IsKind returns true if err, or the error it wraps, is an *Error of the given
// kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := errors.Cause(err).(*Error)
	return ok && e.Kind == kind
}
