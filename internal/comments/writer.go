package comments

import (
	"scribe/internal/sink"
	"scribe/internal/source"
)

// Writer answers leading/trailing comment queries for the current file and
// emits comment text through the output sink. A consumed watermark
// guarantees every range is considered exactly once per pass.
type Writer struct {
	out      *sink.Writer
	file     *source.File
	ranges   []Range
	consumed int
	disabled bool
}

func NewWriter(out *sink.Writer) *Writer {
	return &Writer{out: out}
}

// SetSourceFile scans the file's comments and resets the watermark.
// Call once at the start of each file pass.
func (w *Writer) SetSourceFile(file *source.File) {
	w.file = file
	w.consumed = 0
	if file == nil {
		w.ranges = nil
		return
	}
	w.ranges = Scan(file.Content)
}

// Reset drops all per-file state.
func (w *Writer) Reset() {
	w.file = nil
	w.ranges = nil
	w.consumed = 0
}

// SetDisabled turns all emission into a no-op; queries still work.
func (w *Writer) SetDisabled(disabled bool) {
	w.disabled = disabled
}

// LeadingRanges returns the unconsumed comment ranges that end at or before
// pos, without consuming them.
func (w *Writer) LeadingRanges(pos uint32) []Range {
	return rangesBefore(w.ranges, w.consumed, pos)
}

// TrailingRangesAt returns the unconsumed ranges that begin at or after pos
// on the same source line, without consuming them.
func (w *Writer) TrailingRangesAt(pos uint32) []Range {
	if w.file == nil {
		return nil
	}
	return rangesAt(w.ranges, w.consumed, pos, w.file.Content)
}

// EmitLeading writes every unconsumed comment that ends at or before pos.
func (w *Writer) EmitLeading(pos uint32) {
	if w.file == nil {
		return
	}
	ranges := w.LeadingRanges(pos)
	for _, r := range ranges {
		w.consumed++
		if w.disabled {
			continue
		}
		w.emitRange(r)
		if r.HasTrailingNewLine {
			w.out.WriteLine()
		} else {
			w.out.Space()
		}
	}
}

// EmitTrailing writes the unconsumed comments that trail pos on its line,
// each preceded by a single space.
func (w *Writer) EmitTrailing(pos uint32) {
	if w.file == nil {
		return
	}
	ranges := w.TrailingRangesAt(pos)
	for _, r := range ranges {
		// Ranges between the watermark and pos are abandoned, not emitted:
		// the node that owned them was elided.
		w.skipTo(r)
		w.consumed++
		if w.disabled {
			continue
		}
		w.out.Space()
		w.emitRange(r)
	}
}

func (w *Writer) skipTo(r Range) {
	for w.consumed < len(w.ranges) && w.ranges[w.consumed].Start < r.Start {
		w.consumed++
	}
}

func (w *Writer) emitRange(r Range) {
	text := string(w.file.Content[r.Start:r.End])
	w.out.RawWrite(text)
}
