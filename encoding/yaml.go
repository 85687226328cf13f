package encoding

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/tiscc/core"
)

// NodeDocument is the YAML form of one compiled node.
type NodeDocument struct {
	Node   int            `yaml:"node"`
	Words  []string       `yaml:"words,flow"`
	Labels map[string]int `yaml:"labels,omitempty"`
}

// NewNodeDocument converts p. Words are four hex digits; each label maps
// to the slot jumps to it resolve to.
func NewNodeDocument(p core.Program) NodeDocument {
	doc := NodeDocument{
		Node:  p.Node,
		Words: make([]string, len(p.Words)),
	}

	for i, w := range p.Words {
		doc.Words[i] = w.String()
	}

	for _, b := range p.Labels {
		if doc.Labels == nil {
			doc.Labels = make(map[string]int)
		}
		if slot, ok := doc.Labels[b.Name]; !ok || b.Slot < slot {
			doc.Labels[b.Name] = b.Slot
		}
	}

	return doc
}

// YAMLEmitter writes one YAML document per node.
type YAMLEmitter struct {
	enc *yaml.Encoder
}

// NewYAMLEmitter creates a YAMLEmitter.
func NewYAMLEmitter(w io.Writer) *YAMLEmitter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLEmitter{enc: enc}
}

func (e *YAMLEmitter) EmitNode(p core.Program) error {
	return errors.Wrapf(e.enc.Encode(NewNodeDocument(p)), "encode node %d", p.Node)
}

func (e *YAMLEmitter) Flush() error {
	return errors.Wrap(e.enc.Close(), "close yaml stream")
}
