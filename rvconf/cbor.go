package rvconf

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// wireNode is the snapshot encoding of a tree node. Exactly one field is
// set, mirroring the in-memory variant.
type wireNode struct {
	Scalar *string             `cbor:"1,keyasint,omitempty"`
	Sub    map[string]wireNode `cbor:"2,keyasint,omitempty"`
}

func (t *Tree) wire() map[string]wireNode {
	out := make(map[string]wireNode, len(t.nodes))
	for key, n := range t.nodes {
		if n.isSubtree() {
			out[key] = wireNode{Sub: n.sub.wire()}
		} else {
			s := n.scalar
			out[key] = wireNode{Scalar: &s}
		}
	}
	return out
}

func fromWire(m map[string]wireNode) (*Tree, error) {
	t := New()
	for key, wn := range m {
		switch {
		case wn.Sub != nil:
			sub, err := fromWire(wn.Sub)
			if err != nil {
				return nil, err
			}
			t.nodes[key] = node{sub: sub}
		case wn.Scalar != nil:
			t.nodes[key] = node{scalar: *wn.Scalar}
		default:
			return nil, fmt.Errorf("roomview: snapshot node %q has no value", key)
		}
	}
	return t, nil
}

// MarshalBinary encodes the tree as a CBOR snapshot.
func (t *Tree) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(t.wire())
}

// UnmarshalTree decodes a CBOR snapshot produced by MarshalBinary.
// Legacy or hand-edited snapshots are validated here, at the parse
// boundary: a node carrying neither a scalar nor a subtree is rejected.
func UnmarshalTree(data []byte) (*Tree, error) {
	var m map[string]wireNode
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode configuration snapshot: %w", err)
	}
	return fromWire(m)
}
