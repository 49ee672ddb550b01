// Package srcmap records correspondences between emitted positions and
// original source spans. The printer brackets every position-mapped node
// with a paired start/end mark; the recorded mappings are serialized as a
// sibling artifact next to the emitted text.
package srcmap

import (
	"scribe/internal/source"
)

// Mapping ties one generated position to one original byte offset.
type Mapping struct {
	GenLine   uint32
	GenColumn uint32
	File      source.FileID
	Offset    uint32
}

// Position is the sink-side position query the writer needs.
type Position interface {
	Line() uint32
	Column() uint32
}

// Writer collects mappings for one output file.
type Writer struct {
	pos      Position
	file     source.FileID
	mappings []Mapping
	open     int
}

func NewWriter(pos Position) *Writer {
	return &Writer{pos: pos}
}

// SetSourceFile fixes the file every recorded offset belongs to.
func (w *Writer) SetSourceFile(id source.FileID) {
	w.file = id
}

// EmitStart records the mark opening a node. Must be paired with EmitEnd.
func (w *Writer) EmitStart(sp source.Span) {
	w.open++
	w.record(sp.Start)
}

// EmitEnd records the mark closing a node.
func (w *Writer) EmitEnd(sp source.Span) {
	if w.open > 0 {
		w.open--
	}
	w.record(sp.End)
}

// EmitPos records a raw position marker not tied to a node boundary.
func (w *Writer) EmitPos(offset uint32) {
	w.record(offset)
}

func (w *Writer) record(offset uint32) {
	w.mappings = append(w.mappings, Mapping{
		GenLine:   w.pos.Line(),
		GenColumn: w.pos.Column(),
		File:      w.file,
		Offset:    offset,
	})
}

// Mappings returns everything recorded so far, in emission order.
func (w *Writer) Mappings() []Mapping {
	return w.mappings
}

// OpenMarks reports how many starts are missing their end. Zero after a
// completed file pass is an invariant the driver checks.
func (w *Writer) OpenMarks() int {
	return w.open
}

// Reset clears per-file state.
func (w *Writer) Reset() {
	w.mappings = w.mappings[:0]
	w.open = 0
	w.file = 0
}
