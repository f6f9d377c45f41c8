// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package diet

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// chunkSize is the number of runs decoded at once, so that a corrupt run
// count cannot force a single huge allocation.
const chunkSize = 1024

// ToBytes converts the set to a byte slice
func (s *Set[T]) ToBytes() []byte {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

// WriteTo writes the set to a writer. The encoding is the number of runs as a
// little-endian uint32, followed by the lower and upper bound of every run as
// little-endian uint64 values.
func (s *Set[T]) WriteTo(w io.Writer) (int64, error) {
	var n int64

	// Write number of runs
	count := uint32(s.Len())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return n, err
	}
	n += 4

	if count == 0 {
		return n, nil
	}

	// Write bounds, widened to 64 bits
	payload := make([]uint64, 0, 2*count)
	for _, r := range s.runs {
		payload = append(payload, uint64(r.Lo), uint64(r.Hi))
	}

	if err := binary.Write(w, binary.LittleEndian, payload); err != nil {
		return n, err
	}
	n += int64(len(payload)) * 8
	return n, nil
}

// ReadFrom reads the set from a reader, replacing its content. The decoded
// runs are trusted and not validated. On error the set is left unchanged.
func (s *Set[T]) ReadFrom(r io.Reader) (int64, error) {
	var n int64

	// Read number of runs
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return n, err
	}
	n += 4

	runs := make([]Run[T], 0, min(int(count), chunkSize))
	payload := make([]uint64, 2*min(int(count), chunkSize))
	for remaining := int(count); remaining > 0; {
		size := min(remaining, chunkSize)
		chunk := payload[:2*size]
		if err := binary.Read(r, binary.LittleEndian, chunk); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return n, err
		}
		n += int64(len(chunk)) * 8

		for i := 0; i < len(chunk); i += 2 {
			lo, hi := T(chunk[i]), T(chunk[i+1])
			if uint64(lo) != chunk[i] || uint64(hi) != chunk[i+1] {
				return n, fmt.Errorf("%w: bound out of range for %T", ErrCorrupt, lo)
			}

			runs = append(runs, Run[T]{Lo: lo, Hi: hi})
		}
		remaining -= size
	}

	s.runs = runs
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler
func (s Set[T]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (s *Set[T]) UnmarshalBinary(data []byte) error {
	_, err := s.ReadFrom(bytes.NewReader(data))
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// MarshalJSON encodes the set as an ordered list of [lo, hi] pairs. It has a
// value receiver so that sets held by value encode the same way.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	if s.Len() == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.runs)
}

// UnmarshalJSON decodes the set from an ordered list of [lo, hi] pairs. The
// decoded runs are trusted and not validated.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var runs []Run[T]
	if err := json.Unmarshal(data, &runs); err != nil {
		return err
	}

	s.runs = runs
	return nil
}

// FromBytes creates a set from a byte buffer
func FromBytes[T constraints.Integer](buffer []byte) *Set[T] {
	s := New[T]()
	_, err := s.ReadFrom(bytes.NewReader(buffer))
	if err != nil && err != io.EOF {
		panic(err)
	}
	return s
}

// ReadFrom reads a set from an io.Reader
func ReadFrom[T constraints.Integer](r io.Reader) (*Set[T], error) {
	s := New[T]()
	_, err := s.ReadFrom(r)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return s, nil
}
