package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Output wraps the reconstructed root for the serialized artifact.
type Output struct {
	Root *Node `json:"root"`
}

// MarshalTree converts a reconstructed tree to indented JSON bytes.
func MarshalTree(root *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTreeTo(root, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTree writes a reconstructed tree as JSON to an io.Writer.
func WriteTree(root *Node, w io.Writer) error {
	return writeTreeTo(root, w)
}

// WriteTreeFile writes a reconstructed tree to a JSON file.
func WriteTreeFile(root *Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTreeTo(root, f)
}

func writeTreeTo(root *Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Output{Root: root}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
