package ast

type (
	// NodeID addresses one node in a Builder. 0 means "no node".
	NodeID uint32
	// ListID addresses one node sequence in a Builder. 0 means "no list".
	ListID uint32
	// PayloadID addresses kind-specific data inside a per-kind arena.
	PayloadID uint32
)

const (
	NoNodeID    NodeID    = 0
	NoListID    ListID    = 0
	NoPayloadID PayloadID = 0
)

func (id NodeID) IsValid() bool    { return id != NoNodeID }
func (id ListID) IsValid() bool    { return id != NoListID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
