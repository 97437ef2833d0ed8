// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

// ResolveVarFunc maps a variable name appearing in a formula to a
// non-negative variable index, or a negative number if the name is
// unknown to the caller.
type ResolveVarFunc func(name string) int

// parser implements a small recursive-descent parser over the token stream
// produced by lexer. Its fields are private to one Build invocation; there
// is no file-scope parse state, so concurrent Build calls never interfere.
type parser struct {
	lx      *lexer
	cur     token
	formula string
	resolve ResolveVarFunc
}

func newParser(formula string, resolve ResolveVarFunc) (*parser, error) {
	p := &parser{lx: newLexer(formula), formula: formula, resolve: resolve}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() (err error) {
	p.cur, err = p.lx.next()
	return
}

// parseFormula parses the whole formula and checks there is no trailing
// garbage left over.
func (p *parser) parseFormula() (*node, error) {
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tEOF {
		return nil, buildErr(p.formula, "unexpected trailing input")
	}
	return n, nil
}

// parseExpr handles + and -, left-associative, lowest precedence.
func (p *parser) parseExpr() (*node, error) {
	x, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tPlus || p.cur.kind == tMinus {
		op := OpAdd
		if p.cur.kind == tMinus {
			op = OpSub
		}
		if err = p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		x = binNode(op, x, rhs)
	}
	return x, nil
}

// parseTerm handles * and /, left-associative, binds tighter than + and -.
func (p *parser) parseTerm() (*node, error) {
	x, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tStar || p.cur.kind == tSlash {
		op := OpMul
		if p.cur.kind == tSlash {
			op = OpDiv
		}
		if err = p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		x = binNode(op, x, rhs)
	}
	return x, nil
}

// parsePower handles ^, right-associative "at the singleton level": the
// exponent must be a (possibly parenthesised, possibly negated) numeric
// literal.
func (p *parser) parsePower() (*node, error) {
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tCaret {
		if err = p.advance(); err != nil {
			return nil, err
		}
		lit, err := p.parseExponentLiteral()
		if err != nil {
			return nil, err
		}
		x = binNode(OpPow, x, lit)
	}
	return x, nil
}

// parseExponentLiteral parses the restricted exponent grammar.
func (p *parser) parseExponentLiteral() (*node, error) {
	neg := false
	if p.cur.kind == tMinus {
		neg = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	var v float64
	if p.cur.kind == tLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner := false
		if p.cur.kind == tMinus {
			inner = true
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if p.cur.kind != tNum {
			return nil, buildErr(p.formula, "exponent target must be a numeric literal")
		}
		v = p.cur.num
		if inner {
			v = -v
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind != tRParen {
			return nil, buildErr(p.formula, "unbalanced parentheses")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else if p.cur.kind == tNum {
		v = p.cur.num
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		return nil, buildErr(p.formula, "exponent target must be a numeric literal")
	}
	if neg {
		v = -v
	}
	return numNode(v), nil
}

// parseUnary handles a leading unary minus wrapping the next unary operand
// or atom; a following `^` applies to the negated value, so "-2^2" is
// (-2)^2.
func (p *parser) parseUnary() (*node, error) {
	if p.cur.kind == tMinus {
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unNode(OpNeg, x), nil
	}
	return p.parseAtom()
}

// parseAtom handles numbers, variables, function calls and parenthesised
// sub-expressions.
func (p *parser) parseAtom() (*node, error) {
	switch p.cur.kind {
	case tNum:
		v := p.cur.num
		if err := p.advance(); err != nil {
			return nil, err
		}
		return numNode(v), nil

	case tIdent:
		name := p.cur.name
		if err := p.advance(); err != nil {
			return nil, err
		}
		idx := -1
		if p.resolve != nil {
			idx = p.resolve(name)
		}
		return varNode(idx), nil

	case tFunc:
		op := reservedFuncs[p.cur.name]
		fname := p.cur.name
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind != tLParen {
			return nil, buildErr(p.formula, "function "+fname+" must be followed by '('")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tRParen {
			return nil, buildErr(p.formula, "unbalanced parentheses")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return unNode(op, arg), nil

	case tLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tRParen {
			return nil, buildErr(p.formula, "unbalanced parentheses")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, buildErr(p.formula, "operator missing operand")
}
