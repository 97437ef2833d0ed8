// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsect

// ForceMain implements a pressurised closed circular conduit. Its geometry
// is identical to Circular (the pipe is still circular); what differs is
// the friction law used downstream by the momentum integrator when the
// conduit is flowing full (see network.Helpers.ForceMainFricSlope). Embedding
// Circular gives ForceMain its Init/GetPrms/IsOpen/YFull/AFull/AofY/WofY/RofY
// for free; ForceMain exists as a distinct type only so xsect.New and the
// momentum integrator can tell the two apart.
type ForceMain struct {
	Circular
}
