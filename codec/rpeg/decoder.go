/*
NAME
  decoder.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package rpeg

import (
	"fmt"
	"io"

	"github.com/ausocean/rpeg/container/rpegio"
)

// Decoder decompresses an rpeg envelope and writes the resulting plain-PPM
// image to its destination.
type Decoder struct {
	dst io.Writer
}

// NewDecoder returns a new Decoder writing to dst.
func NewDecoder(dst io.Writer) *Decoder {
	return &Decoder{dst: dst}
}

// Write reads an rpeg envelope from src, decompresses it, and writes the
// resulting plain-PPM image to the Decoder's destination.
func (d *Decoder) Write(src io.Reader) (int, error) {
	words, width, height, err := rpegio.ReadFile(src)
	if err != nil {
		return 0, fmt.Errorf("rpeg: could not read compressed envelope: %w", err)
	}

	img := Decompress(words, width, height)

	cw := &countingWriter{w: d.dst}
	if err := img.Write(cw); err != nil {
		return cw.n, fmt.Errorf("rpeg: could not write decompressed image: %w", err)
	}
	return cw.n, nil
}
