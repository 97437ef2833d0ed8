// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package calc implements a small symbolic expression evaluator: it parses
// a one-line infix arithmetic formula referencing named variables and
// compiles it into an immutable postfix Program that can be evaluated
// cheaply, many times, against a caller-supplied variable-value callback.
package calc
