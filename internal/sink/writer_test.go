package sink

import (
	"testing"
)

func TestWriterIndentation(t *testing.T) {
	w := New(Options{IndentWidth: 2})
	w.Write("if (x) {")
	w.WriteLine()
	w.IncreaseIndent()
	w.Write("y;")
	w.WriteLine()
	w.DecreaseIndent()
	w.Write("}")

	want := "if (x) {\n  y;\n}"
	if got := w.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestWriterPendingIndentIsLazy(t *testing.T) {
	w := New(Options{IndentWidth: 4})
	w.IncreaseIndent()
	w.WriteLine()
	w.WriteLine()
	w.Write("x")

	// Blank lines carry no trailing indentation.
	if got := w.Text(); got != "\n\n    x" {
		t.Errorf("Text() = %q, want %q", got, "\n\n    x")
	}
}

func TestWriterLineColumn(t *testing.T) {
	w := New(Options{})
	if w.Line() != 1 || w.Column() != 1 {
		t.Fatalf("fresh writer at %d:%d, want 1:1", w.Line(), w.Column())
	}
	w.Write("abc")
	if w.Line() != 1 || w.Column() != 4 {
		t.Errorf("after abc at %d:%d, want 1:4", w.Line(), w.Column())
	}
	w.WriteLine()
	if w.Line() != 2 || w.Column() != 1 {
		t.Errorf("after break at %d:%d, want 2:1", w.Line(), w.Column())
	}
	w.IncreaseIndent()
	if w.Column() != 5 {
		t.Errorf("pending indent column = %d, want 5", w.Column())
	}
}

func TestWriterReset(t *testing.T) {
	w := New(Options{})
	w.Write("text")
	w.WriteLine()
	w.IncreaseIndent()
	w.Reset()

	if w.Len() != 0 || w.Line() != 1 || w.Column() != 1 {
		t.Errorf("after Reset: len=%d line=%d col=%d", w.Len(), w.Line(), w.Column())
	}
	w.Write("x")
	if got := w.Text(); got != "x" {
		t.Errorf("indent survived Reset: %q", got)
	}
}

func TestWriterCustomNewLine(t *testing.T) {
	w := New(Options{NewLine: "\r\n"})
	w.Write("a")
	w.WriteLine()
	w.Write("b")
	if got := w.Text(); got != "a\r\nb" {
		t.Errorf("Text() = %q, want %q", got, "a\r\nb")
	}
}
