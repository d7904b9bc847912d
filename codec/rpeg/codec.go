/*
NAME
  codec.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package rpeg

import (
	"github.com/ausocean/rpeg/codec/rpeg/array2"
	"github.com/ausocean/rpeg/codec/rpeg/blockdecomp"
	"github.com/ausocean/rpeg/codec/rpeg/colorspace"
	"github.com/ausocean/rpeg/codec/rpeg/quantize"
	"github.com/ausocean/rpeg/container/ppm"
)

// Compress walks src's blocks in row-major order, producing one 32-bit
// code word per 2x2 block, along with the trimmed (even) width and height
// those words cover. Source dimensions with height or width under 2 yield
// an empty word slice, not an error.
func Compress(src *ppm.Image) (words []uint32, width, height int) {
	width = src.Width &^ 1
	height = src.Height &^ 1
	if width == 0 || height == 0 {
		return nil, width, height
	}

	entries := tileBlocks(src, width, height).IterRowMajor()
	words = make([]uint32, 0, len(entries))
	for _, e := range entries {
		words = append(words, compressBlock(e.Val, float64(src.Denom)))
	}
	return words, width, height
}

// Decompress parses words as a row-major sequence of blocks covering a
// width x height image (width/2 blocks per row, per the envelope's
// declared trimmed dimensions) and reconstructs the image. The result
// always has Denom 255.
func Decompress(words []uint32, width, height int) *ppm.Image {
	img := &ppm.Image{Width: width, Height: height, Denom: 255, Pixels: make([]ppm.Pixel, width*height)}
	if width == 0 || height == 0 {
		return img
	}

	blocksPerRow := width / 2
	for idx, word := range words {
		row := (idx / blocksPerRow) * 2
		col := (idx % blocksPerRow) * 2
		block := decompressBlock(row, col, word)
		for _, p := range block.unpack() {
			img.Pixels[p.Row*width+p.Col] = p.Pixel
		}
	}
	return img
}

// tileBlocks crops src to width x height and groups its pixels into 2x2
// blocks in row-major order.
func tileBlocks(src *ppm.Image, width, height int) array2.Array2[Block] {
	rows, cols := height/2, width/2
	flat := make([]Block, 0, rows*cols)
	for r := 0; r < height; r += 2 {
		for c := 0; c < width; c += 2 {
			flat = append(flat, packBlock(r, c,
				src.At(r, c), src.At(r, c+1),
				src.At(r+1, c), src.At(r+1, c+1),
			))
		}
	}
	return array2.From(flat, rows, cols)
}

// compressBlock reduces one RGB block to its 32-bit code word.
func compressBlock(b Block, denom float64) uint32 {
	positions := b.unpack()

	var luma blockdecomp.Luma
	var pb, pr [4]float64
	for i, p := range positions {
		rgb := colorspace.RGBToFloat(p.Pixel.R, p.Pixel.G, p.Pixel.B, denom)
		ypbpr := colorspace.ToComponentVideo(rgb)
		switch i {
		case 0:
			luma.Y1 = ypbpr.X
		case 1:
			luma.Y2 = ypbpr.X
		case 2:
			luma.Y3 = ypbpr.X
		case 3:
			luma.Y4 = ypbpr.X
		}
		pb[i], pr[i] = ypbpr.Y, ypbpr.Z
	}

	coeffs := blockdecomp.GetCoefficients(luma)
	pbAvg, prAvg := blockdecomp.AverageChroma(pb, pr)

	bi, ci, di := quantize.QuantizeBCD(coeffs.B, coeffs.C, coeffs.D)
	pbIdx, prIdx := quantize.QuantizeChroma(pbAvg, prAvg)

	return quantize.ConstructWord(quantize.Quantized{
		A:  quantize.QuantizeA(coeffs.A),
		B:  bi,
		C:  ci,
		D:  di,
		Pb: pbIdx,
		Pr: prIdx,
	})
}

// decompressBlock reconstructs an RGB block at (row, col) from a code word.
func decompressBlock(row, col int, word uint32) Block {
	q := quantize.ParseWord(word)
	a := quantize.DequantizeA(q.A)
	b, c, d := quantize.DequantizeBCD(q.B, q.C, q.D)
	pb, pr := quantize.DequantizeChroma(q.Pb, q.Pr)

	luma := blockdecomp.GetLuma(blockdecomp.Coeffs{A: a, B: b, C: c, D: d})
	ys := [4]float64{luma.Y1, luma.Y2, luma.Y3, luma.Y4}

	var px [4]ppm.Pixel
	for i, y := range ys {
		rgb := colorspace.FromComponentVideo(colorspace.Triple{X: y, Y: pb, Z: pr})
		r, g, bch := colorspace.FloatToRGB(rgb, 255)
		px[i] = ppm.Pixel{R: r, G: g, B: bch}
	}

	return packBlock(row, col, px[0], px[1], px[2], px[3])
}
