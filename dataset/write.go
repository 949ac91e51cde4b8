package dataset

import (
	"compress/gzip"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
)

// MarshalJSON encodes a dataset as compact JSON, the schema its consumers
// parse.
func MarshalJSON(dataset any) ([]byte, error) {
	data, err := json.Marshal(dataset)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// WriteJSONFile writes a dataset as compact JSON to path.
func WriteJSONFile(dataset any, path string) error {
	data, err := MarshalJSON(dataset)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteBinaryFile writes a dataset in gob encoding, gzip-compressed when
// compress is set.
func WriteBinaryFile(dataset any, path string, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if compress {
		zw := gzip.NewWriter(f)
		if err := gob.NewEncoder(zw).Encode(dataset); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}
		return nil
	}

	if err := gob.NewEncoder(f).Encode(dataset); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
