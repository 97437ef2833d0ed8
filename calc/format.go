// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import "strconv"

// Format re-serialises a Program back into an infix string, fully
// parenthesised so that re-parsing it reproduces the same evaluation order.
// Variables are rendered as synthetic names "V<idx>"; a caller wanting the
// build(format(program)) round-trip property must supply a ResolveVarFunc
// that maps "V<idx>" back to idx.
func Format(prog *Program) string {
	var stack []string
	pop := func() string {
		n := len(stack)
		v := stack[n-1]
		stack = stack[:n-1]
		return v
	}
	for n := prog.head; n != nil; n = n.Next {
		switch n.Op {
		case OpNum:
			stack = append(stack, strconv.FormatFloat(n.Val, 'g', -1, 64))
		case OpVar:
			stack = append(stack, "V"+strconv.Itoa(n.VarIdx))
		case OpNeg:
			a := pop()
			stack = append(stack, "(-"+a+")")
		case OpAdd, OpSub, OpMul, OpDiv, OpPow:
			b := pop()
			a := pop()
			stack = append(stack, "("+a+opSymbol(n.Op)+b+")")
		default:
			a := pop()
			stack = append(stack, funcName(n.Op)+"("+a+")")
		}
	}
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}

func opSymbol(op Opcode) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return "?"
}
