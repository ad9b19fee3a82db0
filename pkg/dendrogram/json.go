package dendrogram

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

var attributeKeys = []string{"node_attributes", "leaf_attributes"}

// ParseJSON reads a nested dendrogram. Every object under node_attributes or
// leaf_attributes becomes a node; an object's children hang below the last
// node it declares.
func ParseJSON(r io.Reader) (*Dendrogram, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode dendrogram json: %w", err)
	}

	d := &Dendrogram{}
	if err := d.collect(raw, ""); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dendrogram) collect(obj map[string]any, parent domain.NodeID) error {
	for _, key := range attributeKeys {
		attrs, _ := obj[key].([]any)
		for _, a := range attrs {
			m, ok := a.(map[string]any)
			if !ok {
				return fmt.Errorf("%s entry is %T, expected object", key, a)
			}
			node, err := decodeNode(m)
			if err != nil {
				return err
			}
			d.Nodes = append(d.Nodes, node)
			if parent != "" {
				d.edges = append(d.edges, domain.Edge{Parent: parent, Child: node.ID()})
			}
			parent = node.ID()
		}
	}

	children, _ := obj["children"].([]any)
	for _, c := range children {
		child, ok := c.(map[string]any)
		if !ok {
			return fmt.Errorf("children entry is %T, expected object", c)
		}
		if err := d.collect(child, parent); err != nil {
			return err
		}
	}
	return nil
}

func decodeNode(m map[string]any) (Node, error) {
	var node Node
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &node,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return node, err
	}
	if err := decoder.Decode(m); err != nil {
		return node, fmt.Errorf("failed to decode node attributes: %w", err)
	}
	if node.Accession == "" {
		return node, fmt.Errorf("node attributes without cell_set_accession: %v", m)
	}
	return node, nil
}
