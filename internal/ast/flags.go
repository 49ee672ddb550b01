package ast

// NodeFlags carries modifier and structural bits on a node.
type NodeFlags uint16

const (
	// FlagSynthesized marks nodes created by a transform rather than parsed
	// from source; their spans do not point at real text.
	FlagSynthesized NodeFlags = 1 << iota
	// FlagStartsOnNewLine is the explicit per-node layout hint consulted by
	// line-preserving and single-line list modes.
	FlagStartsOnNewLine
	FlagExported
	FlagDefault
	FlagStatic
	// FlagExportStar turns an export declaration into `export * from "m"`.
	FlagExportStar
)

func (f NodeFlags) Has(bit NodeFlags) bool { return f&bit != 0 }
