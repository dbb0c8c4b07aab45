/*
Package viz renders the storage state of a Vec for console inspection.

The rendering shows every slot of the currently active buffer — live slots
with their element values, free slots as placeholders — colorized by storage
mode, so that inline/heap transitions become visible at a glance during
debugging sessions.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package viz

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
