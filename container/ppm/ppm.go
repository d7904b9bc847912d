/*
NAME
  ppm.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ppm reads and writes the plain ("P3") ASCII netpbm RGB container:
// a magic number, whitespace-separated width/height and maximum channel
// value (denominator), followed by that many red/green/blue triples in
// row-major order. It is the RGB pixel source/sink collaborator the rpeg
// codec core consumes and produces.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// magic is the plain-PPM format identifier.
const magic = "P3"

// Pixel is one RGB sample, each channel in [0, Denom] of its owning Image.
type Pixel struct {
	R, G, B uint16
}

// Image is a flat, row-major RGB raster plus its declared maximum channel
// value (Denom).
type Image struct {
	Width, Height int
	Denom         int
	Pixels        []Pixel
}

// At returns the pixel at (row, col).
func (img *Image) At(row, col int) Pixel {
	return img.Pixels[row*img.Width+col]
}

// Read parses a plain-PPM image from r.
func Read(r io.Reader) (*Image, error) {
	sc := newTokenScanner(r)

	got, err := sc.token()
	if err != nil {
		return nil, fmt.Errorf("ppm: could not read magic number: %w", err)
	}
	if got != magic {
		return nil, fmt.Errorf("ppm: unsupported magic number %q, want %q", got, magic)
	}

	width, err := sc.intToken()
	if err != nil {
		return nil, fmt.Errorf("ppm: could not read width: %w", err)
	}
	height, err := sc.intToken()
	if err != nil {
		return nil, fmt.Errorf("ppm: could not read height: %w", err)
	}
	denom, err := sc.intToken()
	if err != nil {
		return nil, fmt.Errorf("ppm: could not read denominator: %w", err)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("ppm: negative dimensions %dx%d", width, height)
	}
	if denom <= 0 || denom > 65535 {
		return nil, fmt.Errorf("ppm: denominator %d out of range (0, 65535]", denom)
	}

	pixels := make([]Pixel, width*height)
	for i := range pixels {
		r, err := sc.intToken()
		if err != nil {
			return nil, fmt.Errorf("ppm: could not read red channel of pixel %d: %w", i, err)
		}
		g, err := sc.intToken()
		if err != nil {
			return nil, fmt.Errorf("ppm: could not read green channel of pixel %d: %w", i, err)
		}
		b, err := sc.intToken()
		if err != nil {
			return nil, fmt.Errorf("ppm: could not read blue channel of pixel %d: %w", i, err)
		}
		pixels[i] = Pixel{uint16(r), uint16(g), uint16(b)}
	}

	return &Image{Width: width, Height: height, Denom: denom, Pixels: pixels}, nil
}

// Write serialises img as a plain-PPM image to w.
func (img *Image) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, img.Width, img.Height, img.Denom); err != nil {
		return fmt.Errorf("ppm: could not write header: %w", err)
	}
	for i, p := range img.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return fmt.Errorf("ppm: could not write pixel %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// tokenScanner splits a plain-PPM stream into whitespace-delimited tokens,
// skipping '#'-to-end-of-line comments the way netpbm readers conventionally
// do.
type tokenScanner struct {
	br *bufio.Reader
}

func newTokenScanner(r io.Reader) *tokenScanner {
	return &tokenScanner{br: bufio.NewReader(r)}
}

func (t *tokenScanner) token() (string, error) {
	// Skip whitespace and comments.
	for {
		b, err := t.br.ReadByte()
		if err != nil {
			return "", err
		}
		switch {
		case b == '#':
			if _, err := t.br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case isSpace(b):
			continue
		default:
			if err := t.br.UnreadByte(); err != nil {
				return "", err
			}
			return t.readToken()
		}
	}
}

func (t *tokenScanner) readToken() (string, error) {
	var buf []byte
	for {
		b, err := t.br.ReadByte()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}
		if isSpace(b) {
			if err := t.br.UnreadByte(); err != nil {
				return "", err
			}
			return string(buf), nil
		}
		buf = append(buf, b)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func (t *tokenScanner) intToken() (int, error) {
	tok, err := t.token()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}
