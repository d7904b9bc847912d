/*
NAME
  encoder.go

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

	"github.com/ausocean/rpeg/container/ppm"
	"github.com/ausocean/rpeg/container/rpegio"
)

// Encoder compresses a plain-PPM image and writes the resulting rpeg
// envelope to its destination.
type Encoder struct {
	dst io.Writer
}

// NewEncoder returns a new Encoder writing to dst.
func NewEncoder(dst io.Writer) *Encoder {
	return &Encoder{dst: dst}
}

// Write reads a plain-PPM image from src, compresses it, and writes the
// resulting rpeg envelope to the Encoder's destination. It returns the
// number of compressed bytes written.
func (e *Encoder) Write(src io.Reader) (int, error) {
	img, err := ppm.Read(src)
	if err != nil {
		return 0, fmt.Errorf("rpeg: could not read source image: %w", err)
	}

	words, width, height := Compress(img)

	cw := &countingWriter{w: e.dst}
	if err := rpegio.WriteFile(cw, words, width, height); err != nil {
		return cw.n, fmt.Errorf("rpeg: could not write compressed envelope: %w", err)
	}
	return cw.n, nil
}

// countingWriter wraps an io.Writer, tracking the number of bytes written
// through it.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
