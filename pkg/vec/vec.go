// Package vec holds the float32 vector helpers shared by the curated
// knowledge store and the sqlite chunk index.
package vec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Serialize converts a float32 slice to a LittleEndian byte slice for
// BLOB storage.
func Serialize(v []float32) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		return nil, fmt.Errorf("failed to serialize vector: %w", err)
	}
	return buf.Bytes(), nil
}

// Deserialize is the inverse of Serialize.
func Deserialize(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector blob length %d is not a multiple of 4", len(b))
	}
	out := make([]float32, len(b)/4)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &out); err != nil {
		return nil, fmt.Errorf("failed to deserialize vector: %w", err)
	}
	return out, nil
}

// Cosine returns the cosine similarity of a and b, or 0 when either vector
// is empty, zero-length, or the dimensions differ.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
