// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package network implements the dynamic-wave conduit flow solver: flow
// classification, free-surface-area distribution, and the finite-difference
// momentum-equation integrator that advances one conduit's flow estimate
// per sub-iteration.
package network
