// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import "math"

// stackSize is the fixed size of the value stack used to evaluate a
// Program. Evaluation never allocates.
const stackSize = 1024

// ReadVarFunc supplies the current value of the variable at the given
// index (as produced by ResolveVarFunc during Build).
type ReadVarFunc func(varIdx int) float64

// Evaluate executes prog's postfix program against readVar and returns the
// result. A nil readVar makes every variable reference evaluate to 0. The
// final result is coerced to 0 if it would otherwise be NaN; this is the
// only point where NaN is clipped — intermediate domain errors are handled
// opcode-by-opcode as listed below.
func Evaluate(prog *Program, readVar ReadVarFunc) float64 {
	var stack [stackSize]float64
	sp := 0
	push := func(v float64) { stack[sp] = v; sp++ }
	pop := func() float64 { sp--; return stack[sp] }

	for n := prog.head; n != nil; n = n.Next {
		switch n.Op {
		case OpNum:
			push(n.Val)
		case OpVar:
			if readVar != nil {
				push(readVar(n.VarIdx))
			} else {
				push(0)
			}
		case OpAdd:
			b, a := pop(), pop()
			push(a + b)
		case OpSub:
			b, a := pop(), pop()
			push(a - b)
		case OpMul:
			b, a := pop(), pop()
			push(a * b)
		case OpDiv:
			b, a := pop(), pop()
			push(a / b) // unchecked: division by zero is the caller's responsibility
		case OpPow:
			exp, base := pop(), pop()
			if base <= 0 {
				push(0)
			} else {
				push(math.Pow(base, exp))
			}
		case OpNeg:
			push(-pop())
		case OpCos:
			push(math.Cos(pop()))
		case OpSin:
			push(math.Sin(pop()))
		case OpTan:
			push(math.Tan(pop()))
		case OpCot:
			a := pop()
			s := math.Sin(a)
			if s == 0 {
				push(0)
			} else {
				push(math.Cos(a) / s)
			}
		case OpAbs:
			push(math.Abs(pop()))
		case OpSgn:
			a := pop()
			switch {
			case a > 0:
				push(1)
			case a < 0:
				push(-1)
			default:
				push(0)
			}
		case OpSqrt:
			a := pop()
			if a < 0 {
				push(0)
			} else {
				push(math.Sqrt(a))
			}
		case OpLog:
			a := pop()
			if a <= 0 {
				push(0)
			} else {
				push(math.Log(a))
			}
		case OpExp:
			push(math.Exp(pop()))
		case OpAsin:
			push(math.Asin(pop()))
		case OpAcos:
			push(math.Acos(pop()))
		case OpAtan:
			push(math.Atan(pop()))
		case OpAcot:
			a := pop()
			push(math.Atan(1 / a))
		case OpSinh:
			push(math.Sinh(pop()))
		case OpCosh:
			push(math.Cosh(pop()))
		case OpTanh:
			push(math.Tanh(pop()))
		case OpCoth:
			a := pop()
			s := math.Sinh(a)
			if s == 0 {
				push(0)
			} else {
				push(math.Cosh(a) / s)
			}
		case OpLog10:
			a := pop()
			if a <= 0 {
				push(0)
			} else {
				push(math.Log10(a))
			}
		case OpStep:
			a := pop()
			if a > 0 {
				push(1)
			} else {
				push(0)
			}
		}
	}

	result := stack[0]
	if math.IsNaN(result) {
		return 0
	}
	return result
}
