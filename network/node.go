// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

// Node is the minimal read-only-during-a-sub-iteration view of a network
// node that the conduit momentum integrator needs. Node heads are advanced
// by the outer Picard iteration, which lives outside this package — this
// package only reads them.
type Node struct {
	Name       string
	InvertElev float64 // invert elevation
	NewDepth   float64 // current-iteration water depth above invert
	IsOutfall  bool    // whether this node is a terminal outfall
}

// Head returns the node's current water-surface elevation.
func (o *Node) Head() float64 {
	return o.InvertElev + o.NewDepth
}
