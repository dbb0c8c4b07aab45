package vlvec

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIteratorWalk(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := FromSlice([]int{10, 20, 30})
	it := v.Begin()
	if it.Item() != 10 {
		t.Errorf("Begin refers to %d, should be 10", it.Item())
	}
	it.Next()
	if it.Item() != 20 {
		t.Errorf("iterator after Next refers to %d, should be 20", it.Item())
	}
	it.Prev()
	if !it.Equal(v.Begin()) {
		t.Errorf("iterator after Next+Prev should be back at Begin")
	}
}

func TestIteratorArithmetic(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := FromSlice([]int{0, 1, 2, 3, 4, 5})
	it := v.Begin().Plus(4)
	if it.Item() != 4 {
		t.Errorf("Begin+4 refers to %d, should be 4", it.Item())
	}
	it = it.Minus(2)
	if it.Item() != 2 {
		t.Errorf("after Minus(2) refers to %d, should be 2", it.Item())
	}
	it.Advance(3)
	if it.Item() != 5 {
		t.Errorf("after Advance(3) refers to %d, should be 5", it.Item())
	}
	it.Advance(-5)
	if !it.Equal(v.Begin()) {
		t.Errorf("after Advance(-5) should be at Begin")
	}
	if v.End().Distance(v.Begin()) != v.Len() {
		t.Errorf("End-Begin = %d, should be %d", v.End().Distance(v.Begin()), v.Len())
	}
	if v.Begin().Distance(v.End()) != -v.Len() {
		t.Errorf("Begin-End = %d, should be %d", v.Begin().Distance(v.End()), -v.Len())
	}
}

func TestIteratorOrdering(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := FromSlice([]int{1, 2, 3})
	a := v.Begin()
	b := v.Begin().Plus(2)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before misordered")
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After misordered")
	}
	if !a.AtOrBefore(a) || !a.AtOrBefore(b) {
		t.Errorf("AtOrBefore misordered")
	}
	if !b.AtOrAfter(b) || !b.AtOrAfter(a) {
		t.Errorf("AtOrAfter misordered")
	}
}

func TestIteratorSetAndRef(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := FromSlice([]int{1, 2, 3})
	it := v.Begin().Plus(1)
	it.Set(42)
	if v.Get(1) != 42 {
		t.Errorf("Set through iterator not visible, contents = %s", v.String())
	}
	*it.Ref() = 43
	if v.Get(1) != 43 {
		t.Errorf("write through Ref not visible, contents = %s", v.String())
	}
}

func TestIteratorConstConversion(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := FromSlice([]int{7, 8, 9})
	it := v.Begin().Plus(2)
	cit := it.Const()
	if cit.Item() != 9 {
		t.Errorf("converted iterator refers to %d, should be 9", cit.Item())
	}
	if !cit.Equal(v.CBegin().Plus(2)) {
		t.Errorf("converted iterator lost its position")
	}
}

func TestIteratorsUniformOverStorageModes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, _ := NewWithCapacity[int](3)
	for i := range 3 {
		v.Push(i)
	}
	sum := 0
	for it := v.CBegin(); !it.Equal(v.CEnd()); it.Next() {
		sum += it.Item()
	}
	if sum != 3 {
		t.Errorf("inline-mode iteration sum = %d, should be 3", sum)
	}
	for i := 3; i < 10; i++ {
		v.Push(i) // now in heap mode; old iterators are invalid
	}
	sum = 0
	for it := v.CBegin(); !it.Equal(v.CEnd()); it.Next() {
		sum += it.Item()
	}
	if sum != 45 {
		t.Errorf("heap-mode iteration sum = %d, should be 45", sum)
	}
}

func TestRangeOverFunc(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := FromSlice([]int{5, 6, 7})
	var indexes, values []int
	for i, value := range v.All() {
		indexes = append(indexes, i)
		values = append(values, value)
	}
	if len(indexes) != 3 || indexes[2] != 2 || values[0] != 5 || values[2] != 7 {
		t.Errorf("All() yielded indexes=%v values=%v", indexes, values)
	}
	sum := 0
	for value := range v.Values() {
		sum += value
	}
	if sum != 18 {
		t.Errorf("Values() sum = %d, should be 18", sum)
	}
}
