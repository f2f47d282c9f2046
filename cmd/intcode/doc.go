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

// The intcode command runs IntCode programs.
//
// Usage:
//
//	intcode [flags] program
//
//	-i, --input words
//		  queue comma separated words as input (can be specified multiple times)
//	-p, --patch addr=value
//		  set memory addr=value before running (can be specified multiple times)
//	    --size n
//		  pre-allocate memory to n words
//	-a, --ascii
//		  interactive ASCII mode
//	    --with filename
//		  in ASCII mode, feed the lines of filename before reading stdin
//	    --noraw
//		  disable raw terminal IO in ASCII mode
//	-s, --script filename
//		  drive the machine with Lua script filename
//	    --max-steps n
//		  abort after n instructions (0 means no limit)
//	-d, --disasm
//		  disassemble the program and exit
//	    --dump
//		  dump the machine state upon exit
//	-o, --output filename
//		  save memory to filename upon exit
//	    --log-level level
//		  log level: trace, debug, info, warn, error, critical or off
//	    --debug
//		  enable debug diagnostics
//
// The program file holds comma separated words. Files with a .ica extension
// are assembled first; see package asm for the syntax.
//
// In the default numeric mode, output values are printed one per line. When
// the machine needs input and the words given with --input are exhausted, the
// next line of stdin is read as a comma separated list of words. The machine
// is run one Step at a time so that --max-steps can stop runaway programs.
//
// Day 2 style runs only need patches:
//
//	intcode -p 1=12 -p 2=2 --dump day02.txt
//
// --ascii: input and output are text, one character per word. Output values
// outside the ASCII range are printed in decimal on a line of their own. If
// stdin is a terminal, it is switched to raw mode with line editing unless
// --noraw is set. Lines from --with files are fed first and echoed, which
// helps replaying a text adventure up to a given point.
//
// --script: the machine is handed to a Lua script instead; see package script
// for the functions of the "intcode" module.
//
// --log-level trace logs every executed instruction to stderr.
package main
