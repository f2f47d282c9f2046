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

// Package asm provides utility functions to assemble and disassemble IntCode
// programs.
//
// Supported assembler mnemonics:
//
//	R is a read parameter, W a write parameter.
//
//	opcode	asm	params	description
//	------	---	------	-----------------------------------------------
//	1	add	R R W	W = R0 + R1
//	2	mul	R R W	W = R0 * R1
//	3	in	W	read next input into W
//	4	out	R	output R0
//	5	jnz	R R	jump to R1 if R0 != 0
//	6	jz	R R	jump to R1 if R0 == 0
//	7	lt	R R W	W = 1 if R0 < R1, else 0
//	8	eq	R R W	W = 1 if R0 == R1, else 0
//	9	arb	R	adjust relative base: RB += R0
//	99	hlt		halt
//
// Parameters:
//
// A parameter is an integer literal, a character literal, a constant or a
// label, with an optional mode prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42
//	@42	relative mode: the value at address RB+42
//
// Write parameters cannot use the immediate mode. Since jump targets are read
// parameters, jumping to a label needs an immediate parameter:
//
//	jnz flag #loop
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not)
//
// Labels, constants and directives:
//
//	:name		defines label name at the current address
//	.org n		sets the current address to n
//	.equ name n	defines constant name with value n
//	.dat v		emits the value v (literal, constant or label) as is
//
// An integer, character or constant appearing where an instruction is
// expected is emitted as a data word, as with .dat.
//
// Input is split at white space into tokens, Forth style. A token that
// converts to a Go integer (see strconv.ParseInt) is an integer literal, a
// token between single quotes is a character literal. Anything else is an
// identifier, so that labels like "2nd" or "end-loop" are allowed.
package asm
