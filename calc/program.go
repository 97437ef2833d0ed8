// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

// progNode is one entry of the postfix program: the same payload as a tree
// node, linked left-right-root (postfix) order.
type progNode struct {
	Op          Opcode
	Val         float64
	VarIdx      int
	Next, Prev  *progNode
}

// Program is an immutable, doubly-linked postfix expression, ready to be
// evaluated repeatedly against different variable stores; a program is not
// tied to one variable source.
type Program struct {
	Formula string
	head    *progNode
	tail    *progNode
	n       int
}

// Len returns the number of opcodes in the program.
func (o *Program) Len() int { return o.n }

func (o *Program) append(op Opcode, val float64, varIdx int) {
	n := &progNode{Op: op, Val: val, VarIdx: varIdx}
	if o.head == nil {
		o.head = n
	} else {
		o.tail.Next = n
		n.Prev = o.tail
	}
	o.tail = n
	o.n++
}

// postOrder walks t in left-right-root order, appending each node's
// payload to prog. Expressions built from one formula line are small, so a
// recursive walk is adequate; an explicit stack would be needed for
// arbitrarily large formulas.
func postOrder(t *node, prog *Program) {
	if t == nil {
		return
	}
	postOrder(t.Left, prog)
	postOrder(t.Right, prog)
	prog.append(t.Op, t.Val, t.VarIdx)
}

// Build parses formula into a postfix Program. resolveVar maps a variable
// name to a caller-defined index (see ResolveVarFunc); it may be nil, in
// which case every variable resolves to index -1.
func Build(formula string, resolveVar ResolveVarFunc) (*Program, error) {
	p, err := newParser(formula, resolveVar)
	if err != nil {
		return nil, err
	}
	tree, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	prog := &Program{Formula: formula}
	postOrder(tree, prog)
	// tree is not referenced again and is left for the garbage collector.
	return prog, nil
}

// Free releases the program's postfix list. Go's garbage collector would
// reclaim it regardless; Free gives callers a single explicit place to drop
// the last reference to a program's lifetime.
func Free(prog *Program) {
	if prog == nil {
		return
	}
	prog.head = nil
	prog.tail = nil
	prog.n = 0
}
