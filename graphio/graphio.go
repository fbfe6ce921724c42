// Package graphio reads and writes graphs as JSON documents of the form
//
//	{"name": "...", "description": "...",
//	 "nodes": [{"id": 0, "x": 100, "y": 100}, ...],
//	 "edges": [{"from": 0, "to": 1}, ...]}
//
// Node coordinates are layout hints for editors and are ignored when the
// document is turned into a core.Graph.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/reachlab/core"
)

// ErrDecode wraps malformed JSON input.
var ErrDecode = errors.New("graphio: malformed document")

// Layout of FromGraph: rows of gridColumns nodes, gridSpacing apart.
const (
	gridOrigin  = 100
	gridSpacing = 80
	gridColumns = 10
)

// Node is one document node.
type Node struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Document is the on-disk graph representation.
type Document struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Nodes       []Node      `json:"nodes"`
	Edges       []core.Edge `json:"edges"`
}

// Decode reads one Document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &doc, nil
}

// Load decodes the Document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Graph converts the document into a core.Graph. Node ids must be exactly
// 0…len(Nodes)-1 in any order; edges are validated as by core.Graph.AddEdge.
func (d *Document) Graph() (*core.Graph, error) {
	ids := make([]int, len(d.Nodes))
	for i, n := range d.Nodes {
		ids[i] = n.ID
	}
	g, err := core.FromIDs(ids, d.Edges)
	if err != nil {
		return nil, fmt.Errorf("graphio: %q: %w", d.Name, err)
	}

	return g, nil
}

// FromGraph builds a Document for g, placing nodes on a grid of ten columns.
func FromGraph(g *core.Graph, name string) *Document {
	n := g.Order()
	doc := &Document{
		Name:        name,
		Description: fmt.Sprintf("%d nodes, %d edges", n, g.Size()),
		Nodes:       make([]Node, n),
		Edges:       g.Edges(),
	}
	for i := 0; i < n; i++ {
		doc.Nodes[i] = Node{
			ID: i,
			X:  float64(gridOrigin + (i%gridColumns)*gridSpacing),
			Y:  float64(gridOrigin + (i/gridColumns)*gridSpacing),
		}
	}

	return doc
}

// Encode writes doc to w as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return nil
}

// Save writes doc to path, replacing any existing file.
func Save(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err = Encode(f, doc); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
