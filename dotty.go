package vlvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
)

// Vec2Dot outputs the internal storage structure of a Vec in Graphviz DOT
// format (for debugging purposes).
//
// The container node shows mode, count and capacity; the buffer node shows
// one record field per slot, live slots first.
func Vec2Dot[T any](v *Vec[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	mode := "inline"
	if v.mode == modeHeap {
		mode = "heap"
	}
	label := fmt.Sprintf("Vec\\nmode=%s count=%d cap=%d", mode, v.count, v.Capacity())
	fmt.Fprintf(w, "\"vec\" [label=\"%s\" shape=box style=bold];\n", label)
	slots := ""
	buf := v.active()
	for i := range buf {
		if i > 0 {
			slots += "|"
		}
		if i < v.count {
			slots += fmt.Sprintf("<s%d> %v", i, buf[i])
		} else {
			slots += fmt.Sprintf("<s%d> ·", i)
		}
	}
	color := "gray"
	if v.mode == modeHeap {
		color = "lightsalmon"
	}
	fmt.Fprintf(w, "\"buf\" [label=\"%s\" shape=record style=filled fillcolor=%s];\n", slots, color)
	fmt.Fprintf(w, "\"vec\" -> \"buf\";\n")
	io.WriteString(w, "}\n")
}
