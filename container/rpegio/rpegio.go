/*
NAME
  rpegio.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package rpegio reads and writes the outer compressed-file envelope: a
// short text header carrying the trimmed image dimensions, followed by a
// dense, big-endian sequence of 32-bit rpeg code words. The core codec
// never sees this framing directly.
package rpegio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// magic identifies an rpeg compressed stream.
const magic = "RPEG"

// Sentinel errors returned by ReadFile for malformed input: the core
// refuses to process partial or inconsistent records rather than guessing
// at a recovery.
var (
	ErrBadMagic          = errors.New("rpegio: bad magic number")
	ErrMalformedStream   = errors.New("rpegio: word stream length is not a multiple of 4 bytes")
	ErrDimensionMismatch = errors.New("rpegio: word count does not match declared width/height")
)

// WriteFile writes words as the payload of an rpeg envelope declaring the
// given trimmed width and height, in row-major block order.
func WriteFile(w io.Writer, words []uint32, width, height int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", magic, width, height); err != nil {
		return fmt.Errorf("rpegio: could not write header: %w", err)
	}
	var buf [4]byte
	for i, word := range words {
		binary.BigEndian.PutUint32(buf[:], word)
		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("rpegio: could not write word %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// ReadFile parses an rpeg envelope, returning its payload words in
// row-major block order along with the declared trimmed width and height.
func ReadFile(r io.Reader) (words []uint32, width, height int, err error) {
	br := bufio.NewReader(r)

	got, err := br.ReadString('\n')
	if err != nil {
		return nil, 0, 0, errors.Wrap(err, "rpegio: could not read magic line")
	}
	if got != magic+"\n" {
		return nil, 0, 0, ErrBadMagic
	}

	if _, err := fmt.Fscanf(br, "%d %d\n", &width, &height); err != nil {
		return nil, 0, 0, errors.Wrap(err, "rpegio: could not read dimensions line")
	}
	if width < 0 || height < 0 {
		return nil, 0, 0, fmt.Errorf("rpegio: negative dimensions %dx%d", width, height)
	}

	payload, err := io.ReadAll(br)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("rpegio: could not read word payload: %w", err)
	}
	if len(payload)%4 != 0 {
		return nil, 0, 0, ErrMalformedStream
	}

	wantWords := (width / 2) * (height / 2)
	gotWords := len(payload) / 4
	if gotWords != wantWords {
		return nil, 0, 0, fmt.Errorf("%w: got %d words, want %d for %dx%d", ErrDimensionMismatch, gotWords, wantWords, width, height)
	}

	words = make([]uint32, gotWords)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(payload[i*4 : i*4+4])
	}
	return words, width, height, nil
}
