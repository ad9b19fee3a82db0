package domain

// NodeID identifies a taxonomy node.
type NodeID string

// Edge links a parent node to one of its children.
type Edge struct {
	Parent NodeID `json:"parent" yaml:"parent"`
	Child  NodeID `json:"child" yaml:"child"`
}

// NodeIDs converts plain strings into node identifiers.
func NodeIDs(ids ...string) []NodeID {
	out := make([]NodeID, len(ids))
	for i, id := range ids {
		out[i] = NodeID(id)
	}
	return out
}
