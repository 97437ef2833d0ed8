// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

// BuildError reports a problem found while parsing a formula: unbalanced
// parentheses, a malformed token, an operator missing an operand, or a
// `^` exponent whose target is not a (possibly parenthesised) numeric
// literal.
type BuildError struct {
	Formula string
	Reason  string
}

func (e *BuildError) Error() string {
	return "calc: cannot build \"" + e.Formula + "\": " + e.Reason
}

func buildErr(formula, reason string) error {
	return &BuildError{Formula: formula, Reason: reason}
}
