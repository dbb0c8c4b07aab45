/*
Package obs fans out storage-transition events of a Vec to multiple
subscribers.

A Vec reports growth, shrink and release transitions to a single synchronous
hook. Package obs adapts such a hook onto a broadcaster, so that any number
of subscribers — test recorders, allocation dashboards, log sinks — can watch
the transitions of one or more vectors without the container itself knowing
about concurrency.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package obs

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
