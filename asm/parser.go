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
	"io"
	"sort"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/chuckries/rustvent-of-code-sub001/vm"
)

// AsmError is a single assembler error.
type AsmError struct {
	Pos scanner.Position
	Msg string
}

// ErrAsm encapsulates errors generated by the assembler.
type ErrAsm []AsmError

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k, err := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	i      []vm.Word
	pc     int
	end    int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	errs   ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, AsmError{pos, msg})
	}
}

func (p *parser) write(v vm.Word) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Word, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

func (p *parser) useLabel(name string, pos scanner.Position) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{pos, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{pos, p.pc})
}

func validIdent(s string) bool {
	if s == "" || strings.ContainsRune("#@:.'", rune(s[0])) {
		return false
	}
	_, err := strconv.ParseInt(s, 0, 64)
	return err != nil
}

// number converts s to an integer if it is an integer literal, a character
// literal or a constant.
func (p *parser) number(s string, pos scanner.Position) (vm.Word, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Word(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error(pos, "invalid character literal "+s)
			return 0, true
		}
		return vm.Word(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Word(c.address), true
	}
	return 0, false
}

// value writes the value of token s: a number or the address of a label.
func (p *parser) value(s string, pos scanner.Position) {
	if v, ok := p.number(s, pos); ok {
		p.write(v)
		return
	}
	if !validIdent(s) {
		p.error(pos, "invalid label name: "+s)
		p.write(0)
		return
	}
	p.useLabel(s, pos)
	p.write(0)
}

// operand writes an instruction parameter and returns its mode.
func (p *parser) operand(s string, pos scanner.Position) vm.Mode {
	m := vm.Position
	switch s[0] {
	case '#':
		m, s = vm.Immediate, s[1:]
	case '@':
		m, s = vm.Relative, s[1:]
	}
	if s == "" {
		p.error(pos, "missing parameter value")
		p.write(0)
		return m
	}
	p.value(s, pos)
	return m
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	const (
		stInsn     = iota // accept anything
		stArg             // instruction parameter
		stDat             // .dat value
		stOrg             // .org address
		stEquName         // .equ name
		stEquValue        // .equ value
	)
	var (
		state   int
		op      vm.Opcode
		opPC    int     // address of the instruction word
		arg     int     // index of the next parameter
		scale   vm.Word // mode digit multiplier for arg
		cstName string  // .equ name
		cstPos  scanner.Position
	)

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		pos := p.s.Position
		s := p.s.TokenText()
		if tok != scanner.Ident {
			p.error(pos, "unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.error(pos, "unterminated comment")
				break
			}
			continue
		}

		switch state {
		case stArg:
			m := p.operand(s, pos)
			if m == vm.Immediate && arg == op.WriteParam() {
				p.error(pos, "immediate mode write parameter: "+s)
			}
			p.i[opPC] += vm.Word(m) * scale
			arg++
			scale *= 10
			if arg == op.Params() {
				state = stInsn
			}
		case stDat:
			p.value(s, pos)
			state = stInsn
		case stOrg:
			v, ok := p.number(s, pos)
			if !ok || v < 0 {
				p.error(pos, ".org: invalid address "+s)
			} else {
				p.pc = int(v)
			}
			state = stInsn
		case stEquName:
			state = stEquValue
			if !validIdent(s) {
				p.error(pos, ".equ: invalid constant name "+s)
				break
			}
			if l, ok := p.labels[s]; ok {
				p.error(pos, ".equ: redefinition of "+s+", previously defined/used as a label here: "+l.pos.String())
				break
			}
			cstName, cstPos = s, pos
		case stEquValue:
			state = stInsn
			v, ok := p.number(s, pos)
			if !ok {
				p.error(pos, ".equ: expected integer, got "+s)
				break
			}
			if cstName != "" {
				p.consts[cstName] = labelSite{cstPos, int(v)}
			}
			cstName = ""
		default:
			switch s[0] {
			case ':':
				n := s[1:]
				if !validIdent(n) {
					p.error(pos, "invalid label name: "+s)
					break
				}
				if cst, ok := p.consts[n]; ok {
					p.error(pos, "label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
					break
				}
				if l, ok := p.labels[n]; ok {
					if l.address != -1 {
						p.error(pos, "label redefinition: "+n+", previous definition here: "+l.pos.String())
						break
					}
					l.address = p.pc
					l.pos = pos
				} else {
					p.labels[n] = &label{labelSite{pos, p.pc}, nil}
				}
			case '.':
				switch s {
				case ".org":
					state = stOrg
				case ".dat":
					state = stDat
				case ".equ":
					state = stEquName
				default:
					p.error(pos, "unknown directive: "+s)
				}
			default:
				if o, ok := vm.LookupOpcode(s); ok {
					op, opPC, arg, scale = o, p.pc, 0, 100
					p.write(vm.Word(op))
					if op.Params() > 0 {
						state = stArg
					}
				} else if v, ok := p.number(s, pos); ok {
					p.write(v)
				} else {
					p.error(pos, "unknown instruction: "+s)
				}
			}
		}
	}
	if state != stInsn {
		p.error(p.s.Pos(), "unexpected end of input")
	}

	// write labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.uses[0].pos, "undefined label: "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Word(l.address)
		}
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
