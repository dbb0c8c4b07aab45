/*
Package vlvec provides a sequence container with inline storage for small
element counts.

Virtual-Length Vectors

A Vec stores its first N elements in a fixed inline slab, requiring no
per-operation heap allocation as long as the element count stays at or below
N. When the count exceeds N, the elements transparently migrate to a
heap-allocated buffer, which is reallocated with a growth factor of 3/2 as
the vector keeps growing. As soon as the count drops back to N or below, the
elements migrate back into the inline slab and the heap buffer is released.

Many programs handle large numbers of short sequences — argument lists,
small sets of children in tree nodes, scratch buffers — for which the
allocation and GC pressure of a freely growing slice is pure overhead.
A Vec makes the small case free and the large case possible:

	Operation    |  count <= N   |  count > N
	-------------+---------------+-------------
	Push         |  O(1), 0 alloc|  amortized O(1)
	Insert/Erase |  O(count)     |  O(count)
	Index        |  O(1)         |  O(1)

The price of the transparent migration is an eager shrink policy: every
removal that brings the count back to N or below immediately copies the
elements into the inline slab and releases the heap buffer. Workloads that
repeatedly push and pop across the N boundary will therefore allocate and
release a heap buffer per cycle. This is a deliberate trade-off in favour of
a simple, predictable storage invariant; callers sensitive to it should keep
their working size away from the boundary.

Vecs are not safe for concurrent use. Access from multiple goroutines
requires external synchronization.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package vlvec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
