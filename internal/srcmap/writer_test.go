package srcmap

import (
	"bytes"
	"testing"

	"scribe/internal/sink"
	"scribe/internal/source"
)

func TestPairedMarks(t *testing.T) {
	out := sink.New(sink.Options{})
	w := NewWriter(out)
	w.SetSourceFile(3)

	sp := source.Span{File: 3, Start: 10, End: 14}
	w.EmitStart(sp)
	out.Write("text")
	w.EmitEnd(sp)

	if w.OpenMarks() != 0 {
		t.Fatalf("OpenMarks = %d, want 0", w.OpenMarks())
	}
	ms := w.Mappings()
	if len(ms) != 2 {
		t.Fatalf("mappings = %d, want 2", len(ms))
	}
	if ms[0] != (Mapping{GenLine: 1, GenColumn: 1, File: 3, Offset: 10}) {
		t.Errorf("start mapping = %+v", ms[0])
	}
	if ms[1] != (Mapping{GenLine: 1, GenColumn: 5, File: 3, Offset: 14}) {
		t.Errorf("end mapping = %+v", ms[1])
	}
}

func TestZeroTextNodeStillBracketed(t *testing.T) {
	out := sink.New(sink.Options{})
	w := NewWriter(out)

	sp := source.Span{Start: 5, End: 5}
	w.EmitStart(sp)
	w.EmitEnd(sp)
	if got := len(w.Mappings()); got != 2 {
		t.Errorf("mappings for empty node = %d, want 2", got)
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	out := sink.New(sink.Options{})
	w := NewWriter(out)
	w.EmitPos(7)
	out.Write("x")
	w.EmitPos(8)

	var buf bytes.Buffer
	if err := WriteArtifact(&buf, "a.src", "a.js", w.Mappings()); err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}
	art, err := ReadArtifact(&buf)
	if err != nil {
		t.Fatalf("ReadArtifact: %v", err)
	}
	if art.SourcePath != "a.src" || art.OutputPath != "a.js" {
		t.Errorf("paths = %q, %q", art.SourcePath, art.OutputPath)
	}
	if len(art.Mappings) != 2 || art.Mappings[1].GenColumn != 2 {
		t.Errorf("mappings = %+v", art.Mappings)
	}
}

func TestReset(t *testing.T) {
	out := sink.New(sink.Options{})
	w := NewWriter(out)
	w.SetSourceFile(1)
	w.EmitStart(source.Span{Start: 0, End: 1})
	w.Reset()
	if len(w.Mappings()) != 0 || w.OpenMarks() != 0 {
		t.Errorf("Reset left mappings=%d open=%d", len(w.Mappings()), w.OpenMarks())
	}
}
