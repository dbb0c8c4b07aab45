package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/vlvec"
)

func plainConfig() *Config {
	return &Config{
		LineWidth: 65,
		Context:   uax11.LatinContext,
		Palette:   Palette{}, // uncolored output for string matching
	}
}

func TestDumpInlineVector(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, err := vlvec.NewWithCapacity[int](4)
	if err != nil {
		t.Fatal(err)
	}
	v.Push(1)
	v.Push(2)
	var bf bytes.Buffer
	if err := Dump(v, &bf, plainConfig()); err != nil {
		t.Fatal(err)
	}
	out := bf.String()
	t.Logf("dump:\n%s", out)
	if !strings.Contains(out, "mode=inline count=2 cap=4") {
		t.Errorf("expected inline header, got %q", out)
	}
	if !strings.Contains(out, "[1]") || !strings.Contains(out, "[2]") {
		t.Errorf("expected live cells in output, got %q", out)
	}
	if !strings.Contains(out, "·") {
		t.Errorf("expected free-slot placeholders, got %q", out)
	}
}

func TestDumpHeapVector(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, _ := vlvec.NewWithCapacity[int](2)
	for i := 1; i <= 3; i++ {
		v.Push(i)
	}
	var bf bytes.Buffer
	if err := Dump(v, &bf, plainConfig()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(bf.String(), "mode=heap count=3 cap=4") {
		t.Errorf("expected heap header, got %q", bf.String())
	}
}

func TestDumpPadsCellsUniformly(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v, _ := vlvec.NewWithCapacity[string](3)
	v.Push("a")
	v.Push("long")
	var bf bytes.Buffer
	if err := Dump(v, &bf, plainConfig()); err != nil {
		t.Fatal(err)
	}
	out := bf.String()
	if !strings.Contains(out, "[a   ]") || !strings.Contains(out, "[long]") {
		t.Errorf("expected cells padded to uniform width, got %q", out)
	}
}

func TestDumpWrapsLongSlotRows(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := vlvec.New[int]()
	for i := range 30 {
		v.Push(100 + i)
	}
	config := plainConfig()
	config.LineWidth = 20
	var bf bytes.Buffer
	if err := Dump(v, &bf, config); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(bf.String(), "\n"), "\n")
	if len(lines) < 4 {
		t.Errorf("expected wrapped slot rows, got %d lines", len(lines))
	}
}
