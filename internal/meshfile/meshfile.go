// Package meshfile reads and writes raw vertex dumps: consecutive
// little-endian float32 values, (x, y, z) per vertex, with no header.
package meshfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// Mesh file errors.
var (
	ErrTruncatedMesh = errors.New("truncated mesh data: length not a multiple of 4 bytes")
	ErrEmptyMesh     = errors.New("empty mesh data")
)

// Load reads the vertex dump at path.
func Load(path string) ([]float32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh: %w", err)
	}
	positions, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return positions, nil
}

// Read reads a vertex dump from r until EOF.
func Read(r io.Reader) ([]float32, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading mesh: %w", err)
	}
	return Decode(data)
}

// Decode converts raw bytes to positions.
func Decode(data []byte) ([]float32, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMesh
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTruncatedMesh, len(data))
	}

	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out, nil
}

// Encode converts positions to raw bytes.
func Encode(positions []float32) []byte {
	data := make([]byte, len(positions)*4)
	for i, v := range positions {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	return data
}

// Write writes positions to w.
func Write(w io.Writer, positions []float32) error {
	_, err := w.Write(Encode(positions))
	return err
}

// Save writes positions to path, creating parent directories as needed.
func Save(path string, positions []float32) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, Encode(positions), 0644)
}
