/*
NAME
  block.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package rpeg implements the rpeg lossy image codec's per-block
// compression pipeline: colorspace conversion, 2x2 luma decomposition,
// quantization, and bit-packing, composed into a Compress/Decompress pair
// that walks an entire image's blocks in row-major order.
package rpeg

import "github.com/ausocean/rpeg/container/ppm"

// Block is a 2x2 tile of an image, identified by the (row, col) of its
// top-left pixel, which are always even.
type Block struct {
	Row, Col                                   int
	TopLeft, TopRight, BottomLeft, BottomRight ppm.Pixel
}

// packBlock builds a Block from its top-left coordinate and four pixels.
func packBlock(row, col int, tl, tr, bl, br ppm.Pixel) Block {
	return Block{Row: row, Col: col, TopLeft: tl, TopRight: tr, BottomLeft: bl, BottomRight: br}
}

// positioned is one pixel together with its absolute image coordinates.
type positioned struct {
	Row, Col int
	Pixel    ppm.Pixel
}

// unpack returns the block's four pixels with their absolute coordinates,
// in the fixed order top-left, top-right, bottom-left, bottom-right.
func (b Block) unpack() [4]positioned {
	return [4]positioned{
		{b.Row, b.Col, b.TopLeft},
		{b.Row, b.Col + 1, b.TopRight},
		{b.Row + 1, b.Col, b.BottomLeft},
		{b.Row + 1, b.Col + 1, b.BottomRight},
	}
}
