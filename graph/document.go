package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"statespace/game"
)

// Document is the flattened description of a finished graph, shaped for
// downstream consumers.
type Document struct {
	Dimensions  [3]int        `json:"dimensions"`
	TotalStates int           `json:"total_states"`
	TotalMoves  int           `json:"total_moves"`
	States      []StateRecord `json:"states"`
	Moves       []MoveRecord  `json:"moves"`
}

// StateRecord carries one state's cell content and its precomputed
// terminal flag.
type StateRecord struct {
	State      []game.Cell `json:"state"`
	IsTerminal bool        `json:"is_terminal"`
}

// MoveRecord carries one move with both endpoint contents inlined.
type MoveRecord struct {
	FromState []game.Cell `json:"from_state"`
	ToState   []game.Cell `json:"to_state"`
	Position  int         `json:"move_position"`
	Player    game.Cell   `json:"player"`
}

// Flatten produces the serialized form of the graph. States appear in
// discovery order and moves in insertion order, so output is deterministic
// for a given exploration. It fails if the graph does not contain exactly
// one root state with no incoming move.
func (g *Graph) Flatten() (Document, error) {
	if err := g.checkRoot(); err != nil {
		return Document{}, err
	}

	doc := Document{
		Dimensions:  [3]int{g.dims.Length, g.dims.Width, g.dims.Height},
		TotalStates: g.registry.Len(),
		TotalMoves:  len(g.edges),
		States:      make([]StateRecord, 0, g.registry.Len()),
		Moves:       make([]MoveRecord, 0, len(g.edges)),
	}

	for h := 0; h < g.registry.Len(); h++ {
		board := g.registry.Board(Handle(h))
		doc.States = append(doc.States, StateRecord{
			State:      board.Cells,
			IsTerminal: board.Terminal(),
		})
	}

	for _, e := range g.edges {
		doc.Moves = append(doc.Moves, MoveRecord{
			FromState: g.registry.Board(e.From).Cells,
			ToState:   g.registry.Board(e.To).Cells,
			Position:  e.Position,
			Player:    e.Player,
		})
	}

	return doc, nil
}

// checkRoot verifies that exactly one state has no incoming move. Anything
// else means the exploration itself was inconsistent and the run must abort.
func (g *Graph) checkRoot() error {
	indegree := make([]int, g.registry.Len())
	for _, e := range g.edges {
		indegree[e.To]++
	}

	root := -1
	for h, deg := range indegree {
		if deg != 0 {
			continue
		}
		if root >= 0 {
			return fmt.Errorf("multiple root states without incoming moves (handles %d and %d)", root, h)
		}
		root = h
	}
	if root < 0 {
		return errors.New("no root state without incoming moves")
	}
	return nil
}

// MarshalDocument converts a document to indented JSON bytes.
func MarshalDocument(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDocumentTo(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDocument writes a document as JSON to an io.Writer.
func WriteDocument(doc Document, w io.Writer) error {
	return writeDocumentTo(doc, w)
}

// WriteDocumentFile writes a document to a JSON file.
func WriteDocumentFile(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeDocumentTo(doc, f)
}

// ReadDocument decodes a JSON document from an io.Reader.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// ReadDocumentFile reads a JSON file and returns the decoded document.
func ReadDocumentFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f)
}

func writeDocumentTo(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
