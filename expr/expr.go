// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the small recursive-descent expression
// evaluator that package domain uses to derive quantities from named
// fields. Valid operators: + - * / **.
package expr

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofv/qty"
)

// Node is one element of the expression AST.
type Node interface {
	eval(fields map[string]*qty.Field) (*qty.Field, error)
}

// FieldRef references a named quantity.
type FieldRef struct{ Name string }

// Const is a numeric literal, broadcast across all cells at evaluation time.
type Const struct{ Value float64 }

// Binop is a binary operation between two sub-expressions.
type Binop struct {
	Op          byte // '+' '-' '*' '/' '^' (for **)
	Left, Right Node
}

func (o FieldRef) eval(fields map[string]*qty.Field) (*qty.Field, error) {
	f, ok := fields[o.Name]
	if !ok {
		return nil, chk.Err("expression references unknown quantity %q", o.Name)
	}
	return f, nil
}

func (o Const) eval(fields map[string]*qty.Field) (*qty.Field, error) {
	// a constant needs a mesh-sized field to combine with; borrow the
	// size from an arbitrary registered field.
	for _, f := range fields {
		return qty.Constant(f, o.Value), nil
	}
	return nil, chk.Err("cannot evaluate a constant expression with no quantities registered")
}

func (o Binop) eval(fields map[string]*qty.Field) (*qty.Field, error) {
	l, err := o.Left.eval(fields)
	if err != nil {
		return nil, err
	}
	r, err := o.Right.eval(fields)
	if err != nil {
		return nil, err
	}
	return qty.Binary(l, r, o.Op)
}

// Eval parses and evaluates expr over the given name->field map.
func Eval(expr string, fields map[string]*qty.Field) (*qty.Field, error) {
	n, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return n.eval(fields)
}

// Parse builds an AST from a textual expression. Grammar (lowest to
// highest precedence): expr := term (('+'|'-') term)* ;
// term := power (('*'|'/') power)* ; power := atom ('**' power)?
// (right-associative) ; atom := '-' atom | name | number | '(' expr ')'.
func Parse(s string) (Node, error) {
	p := &parser{tokens: tokenize(s)}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, chk.Err("unexpected trailing input in expression %q at token %q", s, p.tokens[p.pos])
	}
	return n, nil
}

// tokenizer ///////////////////////////////////////////////////////////////////////////////////////

func tokenize(s string) []string {
	var toks []string
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '*' && i+1 < len(runes) && runes[i+1] == '*':
			toks = append(toks, "**")
			i += 2
		case strings.ContainsRune("+-*/()", c):
			toks = append(toks, string(c))
			i++
		case unicode.IsDigit(c) || c == '.':
			j := i
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.') {
				j++
			}
			toks = append(toks, string(runes[i:j]))
			i = j
		default:
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			if j == i {
				j++ // skip unrecognised rune rather than loop forever
			}
			toks = append(toks, string(runes[i:j]))
			i = j
		}
	}
	return toks
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek() == "+" || p.peek() == "-" {
		op := p.next()[0]
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Binop{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.peek() == "*" || p.peek() == "/" {
		op := p.next()[0]
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = Binop{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parsePower() (Node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek() == "**" {
		p.next()
		right, err := p.parsePower() // right-associative
		if err != nil {
			return nil, err
		}
		left = Binop{Op: '^', Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAtom() (Node, error) {
	tok := p.peek()
	if tok == "" {
		return nil, chk.Err("unexpected end of expression")
	}
	if tok == "-" { // unary minus
		p.next()
		operand, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return Binop{Op: '-', Left: Const{0}, Right: operand}, nil
	}
	if tok == "(" {
		p.next()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, chk.Err("expected ')' in expression")
		}
		p.next()
		return n, nil
	}
	p.next()
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return Const{v}, nil
	}
	return FieldRef{tok}, nil
}
