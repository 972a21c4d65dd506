// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// Xpress-Huffman symbol alphabet, chunk, and wire-layout constants.

const (
	// symbolCount is the size of the Huffman alphabet: 256 literals and 256
	// match-descriptor symbols, the first of which (0x100) doubles as the
	// end-of-stream marker.
	symbolCount = 0x200
	// halfSymbolCount is symbolCount/2: the size in bytes of the packed
	// 4-bit-per-symbol code-length header.
	halfSymbolCount = 0x100

	// chunkSize is the number of input bytes per independently-coded chunk.
	chunkSize = 0x10000

	// streamEndSymbol is the end-of-stream marker, symbol 256.
	streamEndSymbol = 0x100
	// streamEndLen1 is the code length assigned to streamEndSymbol in the
	// canonical empty-chunk header (§6 "zero-length input").
	streamEndLen1 = 1

	// huffBitsMax is the maximum legal canonical code length.
	huffBitsMax = 15

	// minData is the size of the canonical empty-chunk stream: 256 bytes of
	// code lengths (all zero but one nibble) plus two all-zero 16-bit words.
	minData = halfSymbolCount + 4
)

// maxCompressedOverhead mirrors xpress_huff_max_compressed_size's constant
// terms from the reference implementation.
const (
	maxCompressedSizeBase    = 34
	maxCompressedSizePerPart = halfSymbolCount + 2
)

// MaxCompressedSize returns an upper bound on the compressed size of an
// inLen-byte input. Callers may use it to size the out buffer passed to
// CompressTo.
func MaxCompressedSize(inLen int) int {
	chunks := inLen / chunkSize
	return inLen + maxCompressedSizeBase + maxCompressedSizePerPart + maxCompressedSizePerPart*chunks
}
