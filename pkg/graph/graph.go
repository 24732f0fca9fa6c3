package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalView encodes v as indented JSON.
func MarshalView(v View) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteView(v, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteView encodes v as indented JSON to w.
func WriteView(v View, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode view %s: %w", v.Key, err)
	}
	return nil
}

// WriteViewFile writes v to path, replacing any existing file.
func WriteViewFile(v View, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteView(v, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadView decodes a view written by [WriteView].
func ReadView(r io.Reader) (View, error) {
	var v View
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return View{}, fmt.Errorf("decode view: %w", err)
	}
	return v, nil
}
