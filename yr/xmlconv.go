package yr

import (
	"encoding/xml"
	"strings"
)

// node is one parsed XML element: tag name, attributes, child elements and
// text content. It is only a stepping stone towards a Mapping and is not
// retained after conversion. encoding/xml discards comment nodes on decode,
// so they never reach the converter.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
	Text     string     `xml:",chardata"`
}

func parseDocument(data []byte) (*node, error) {
	var n node
	if err := xml.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// child returns the first direct child with the given tag.
func (n *node) child(tag string) (*node, bool) {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == tag {
			return &n.Children[i], true
		}
	}
	return nil, false
}

// children returns all direct children with the given tag, in document
// order. Repeated siblings are handled here rather than in convert, where
// a repeated tag would collapse to a single key.
func (n *node) children(tag string) []*node {
	var out []*node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == tag {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// find walks a path of child tags from n.
func (n *node) find(path ...string) (*node, bool) {
	cur := n
	for _, tag := range path {
		next, ok := cur.child(tag)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Mapping is the flattened view of one XML element. Attribute names and
// child tags share a single key space; values are either string leaves or
// nested Mappings. Absent structure simply yields an empty or partial
// Mapping, never an error.
type Mapping map[string]any

// AttributeBag is the flattened key/value view of one XML element's
// attributes, e.g. temperature's {value, unit}. Keys present are exactly
// those the upstream XML provided.
type AttributeBag map[string]string

// Get returns the value for key. The second return is false when the
// upstream XML did not provide the key.
func (b AttributeBag) Get(key string) (string, bool) {
	v, ok := b[key]
	return v, ok
}

// convert flattens an XML element into a Mapping. Attributes merge directly
// into the element's own mapping; leaf children become string values and
// complex children convert recursively. When siblings share a tag the last
// one wins, so list-building callers iterate node.children instead.
func convert(n *node) Mapping {
	out := Mapping{}
	for _, a := range n.Attrs {
		out[a.Name.Local] = a.Value
	}
	for i := range n.Children {
		c := &n.Children[i]
		if len(c.Attrs) == 0 && len(c.Children) == 0 {
			out[c.XMLName.Local] = strings.TrimSpace(c.Text)
			continue
		}
		out[c.XMLName.Local] = convert(c)
	}
	return out
}

// str extracts a string leaf.
func (m Mapping) str(key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

// sub extracts a nested Mapping.
func (m Mapping) sub(key string) (Mapping, bool) {
	v, ok := m[key].(Mapping)
	return v, ok
}

// bag extracts a nested Mapping's string-valued entries as an AttributeBag.
func (m Mapping) bag(key string) (AttributeBag, bool) {
	sub, ok := m.sub(key)
	if !ok {
		return nil, false
	}
	out := AttributeBag{}
	for k, v := range sub {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out, true
}
