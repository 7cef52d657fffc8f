package ir

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
)

// imageVersion guards against reading images written by an incompatible layout.
const imageVersion = 1

type image struct {
	Version int
	Program *Program
}

// Encode writes the compacted program image to w.
func Encode(w io.Writer, p *Program) error {
	if err := gob.NewEncoder(w).Encode(image{Version: imageVersion, Program: p.Compact()}); err != nil {
		return fmt.Errorf("encode program %s: %w", p.Name, err)
	}

	return nil
}

// Decode reads a program image from r.
func Decode(r io.Reader) (*Program, error) {
	var img image
	if err := gob.NewDecoder(r).Decode(&img); err != nil {
		return nil, fmt.Errorf("decode program image: %w", err)
	}

	if img.Version != imageVersion {
		return nil, fmt.Errorf("unsupported program image version %d", img.Version)
	}

	if img.Program == nil {
		return nil, fmt.Errorf("program image is empty")
	}

	for _, t := range img.Program.Types {
		for _, method := range t.Methods {
			if len(method.Code) == 0 {
				method.Head = NoIndex
			}
		}
	}

	return img.Program, nil
}

// Bytes returns the encoded image of p.
func Bytes(p *Program) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Clone returns an independent deep copy of p.
func Clone(p *Program) (*Program, error) {
	data, err := Bytes(p)
	if err != nil {
		return nil, err
	}

	return Decode(bytes.NewReader(data))
}
