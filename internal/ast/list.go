package ast

// NodeList is an ordered child sequence. HasTrailingSep records whether the
// source carried a trailing delimiter; MultiLine is the "spanned multiple
// source lines" hint consulted by line-preserving layout.
type NodeList struct {
	Nodes          []NodeID
	HasTrailingSep bool
	MultiLine      bool
}

// Lists owns the list arena.
type Lists struct {
	Arena *Arena[NodeList]
}

func NewLists(capHint uint) *Lists {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Lists{Arena: NewArena[NodeList](capHint)}
}

func (l *Lists) New(nodes []NodeID) ListID {
	return ListID(l.Arena.Allocate(NodeList{Nodes: nodes}))
}

func (l *Lists) Get(id ListID) *NodeList {
	return l.Arena.Get(uint32(id))
}

// Nodes returns the element slice for id, or nil for the empty list id.
func (l *Lists) Nodes(id ListID) []NodeID {
	list := l.Get(id)
	if list == nil {
		return nil
	}
	return list.Nodes
}
