// Package comments supplies comment-range queries over raw source text and
// the side-effecting emission used by the printer. Ranges are scanned once
// per file and consumed in order, so no range is ever emitted twice.
package comments

// Kind distinguishes the two comment forms.
type Kind uint8

const (
	Line Kind = iota
	Block
)

// Range is one comment in the source file, as byte offsets.
type Range struct {
	Start              uint32
	End                uint32
	Kind               Kind
	HasTrailingNewLine bool
}

// Scan collects every comment range in content, in file order. String and
// template literals are skipped so their bodies cannot fake a comment.
func Scan(content []byte) []Range {
	var out []Range
	i := 0
	n := len(content)
	for i < n {
		c := content[i]
		switch c {
		case '"', '\'', '`':
			i = skipString(content, i)
		case '/':
			if i+1 >= n {
				i++
				continue
			}
			switch content[i+1] {
			case '/':
				start := i
				for i < n && content[i] != '\n' {
					i++
				}
				out = append(out, Range{
					Start:              uint32(start),
					End:                uint32(i),
					Kind:               Line,
					HasTrailingNewLine: i < n,
				})
			case '*':
				start := i
				i += 2
				for i+1 < n && !(content[i] == '*' && content[i+1] == '/') {
					i++
				}
				if i+1 < n {
					i += 2
				} else {
					i = n
				}
				out = append(out, Range{
					Start:              uint32(start),
					End:                uint32(i),
					Kind:               Block,
					HasTrailingNewLine: i < n && content[i] == '\n',
				})
			default:
				i++
			}
		default:
			i++
		}
	}
	return out
}

// skipString advances past a quoted literal starting at i. Unterminated
// literals run to end of input; that is an upstream defect, not ours.
func skipString(content []byte, i int) int {
	quote := content[i]
	i++
	n := len(content)
	for i < n {
		switch content[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			if quote != '`' {
				return i
			}
		}
		i++
	}
	return n
}

// rangesBefore returns the ranges from rs[idx:] that end at or before pos.
func rangesBefore(rs []Range, idx int, pos uint32) []Range {
	end := idx
	for end < len(rs) && rs[end].End <= pos {
		end++
	}
	return rs[idx:end]
}

// rangesAt returns the ranges from rs[idx:] that trail pos on its line,
// separated from it by nothing but spaces and tabs. The gap rule keeps an
// inner expression from stealing the trailing comment of its statement.
func rangesAt(rs []Range, idx int, pos uint32, content []byte) []Range {
	start := idx
	for start < len(rs) && rs[start].Start < pos {
		start++
	}
	end := start
	cursor := pos
	for end < len(rs) {
		r := rs[end]
		if r.Start < cursor || !blankBetween(content, cursor, r.Start) {
			break
		}
		end++
		cursor = r.End
	}
	return rs[start:end]
}

func blankBetween(content []byte, from, to uint32) bool {
	for i := from; i < to && int(i) < len(content); i++ {
		if content[i] != ' ' && content[i] != '\t' {
			return false
		}
	}
	return true
}
