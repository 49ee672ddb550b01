package source

import (
	"testing"
)

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans merge to hull",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span is a no-op",
			span:     Span{File: 1, Start: 10, End: 40},
			other:    Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "other file is ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.Cover(tt.other)
			if got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.src", []byte("one\ntwo\nthree\n"))

	tests := []struct {
		name  string
		span  Span
		start LineCol
		end   LineCol
	}{
		{
			name:  "first line",
			span:  Span{File: id, Start: 0, End: 3},
			start: LineCol{Line: 1, Col: 1},
			end:   LineCol{Line: 1, Col: 4},
		},
		{
			name:  "second line",
			span:  Span{File: id, Start: 4, End: 7},
			start: LineCol{Line: 2, Col: 1},
			end:   LineCol{Line: 2, Col: 4},
		},
		{
			name:  "spanning a break",
			span:  Span{File: id, Start: 2, End: 9},
			start: LineCol{Line: 1, Col: 3},
			end:   LineCol{Line: 3, Col: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.start || end != tt.end {
				t.Errorf("Resolve() = %v..%v, want %v..%v", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestNormalizeCRLF(t *testing.T) {
	got, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatal("expected changed = true")
	}
	if string(got) != "a\nb\rc\n" {
		t.Errorf("normalizeCRLF = %q, want %q", got, "a\nb\rc\n")
	}

	got, changed = normalizeCRLF([]byte("plain"))
	if changed {
		t.Fatal("expected changed = false")
	}
	if string(got) != "plain" {
		t.Errorf("normalizeCRLF = %q, want %q", got, "plain")
	}
}

func TestLineOf(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.src", []byte("aa\nbb\ncc"))
	f := fs.Get(id)

	cases := []struct {
		off  uint32
		line uint32
	}{
		{0, 1},
		{2, 1},
		{3, 2},
		{5, 2},
		{6, 3},
		{7, 3},
	}
	for _, c := range cases {
		if got := f.LineOf(c.off); got != c.line {
			t.Errorf("LineOf(%d) = %d, want %d", c.off, got, c.line)
		}
	}
}
