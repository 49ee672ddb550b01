// Package sink provides the indentation-aware output buffer the printer
// writes through. It tracks the current line and column so layout
// heuristics and the position map can query where emission stands.
package sink

import (
	"strings"
)

type Options struct {
	NewLine     string
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.NewLine == "" {
		o.NewLine = "\n"
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

// Writer accumulates emitted output. Indentation is written lazily: a
// pending line start materializes only when the next visible text arrives.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	line        uint32
	column      uint32
	atLineStart bool
}

// New creates an output writer.
func New(opt Options) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, 1<<10),
		line:        1,
		column:      1,
		atLineStart: true,
	}
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for i := 0; i < w.indentLevel; i++ {
			w.buf = append(w.buf, '\t')
			w.column++
		}
	} else {
		spaceCount := w.indentLevel * w.opt.IndentWidth
		for i := 0; i < spaceCount; i++ {
			w.buf = append(w.buf, ' ')
			w.column++
		}
	}
	w.atLineStart = false
}

// Write writes s, materializing pending indentation first.
func (w *Writer) Write(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.track(s)
}

// RawWrite writes s without indentation handling. Used for comment and
// helper text that manages its own layout.
func (w *Writer) RawWrite(s string) {
	if s == "" {
		return
	}
	w.buf = append(w.buf, s...)
	w.track(s)
	w.atLineStart = false
	if strings.HasSuffix(s, "\n") {
		w.atLineStart = true
	}
}

func (w *Writer) track(s string) {
	if n := strings.Count(s, "\n"); n > 0 {
		w.line += uint32(n)
		w.column = uint32(len(s)-strings.LastIndexByte(s, '\n')-1) + 1
	} else {
		w.column += uint32(len(s))
	}
}

// WriteLine terminates the current line. Repeated calls at a fresh line
// start still emit a break, so callers control blank lines explicitly.
func (w *Writer) WriteLine() {
	w.buf = append(w.buf, w.opt.NewLine...)
	w.line++
	w.column = 1
	w.atLineStart = true
}

// Space writes a single separating space.
func (w *Writer) Space() {
	w.Write(" ")
}

func (w *Writer) IncreaseIndent() {
	w.indentLevel++
}

func (w *Writer) DecreaseIndent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// Line returns the 1-based line the next write lands on.
func (w *Writer) Line() uint32 {
	return w.line
}

// Column returns the 1-based column the next visible write lands on,
// counting pending indentation as already written.
func (w *Writer) Column() uint32 {
	if w.atLineStart && !w.opt.UseTabs {
		return uint32(w.indentLevel*w.opt.IndentWidth) + 1
	}
	return w.column
}

// AtLineStart reports whether nothing visible has been written on the
// current line yet.
func (w *Writer) AtLineStart() bool {
	return w.atLineStart
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Text returns the accumulated output.
func (w *Writer) Text() string {
	return string(w.buf)
}

// Bytes returns the accumulated output without copying.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reset clears all buffered output and position state for the next file.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.indentLevel = 0
	w.line = 1
	w.column = 1
	w.atLineStart = true
}
