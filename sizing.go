// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// calcCompressedLen computes the exact encoded size (in bytes) of a chunk
// whose intermediate token buffer (length bufLen) would be Huffman-coded
// with t, without actually encoding it (§4.1 "Safe-envelope rule"). This
// mirrors the reference implementation's bit-accounting shortcut: literal
// and match symbol costs are tallied directly from the histogram, then the
// buffer-length accounting corrects for the bytes the intermediate encoding
// used for raw extras that the final encoding also needs (length
// extensions), while removing the bytes that only existed as fixed-size
// intermediate-format padding (the per-group mask and the 3-byte Symbol/
// Offset header baked into every match token).
func calcCompressedLen(t *huffmanTable, counts *[symbolCount]uint32, bufLen int) int {
	symBits := 16 // the trailing all-zero lookahead word is always present
	var literalSyms, matchSyms uint32

	for i := 0; i < halfSymbolCount; i++ {
		symBits += int(t.lens[i]) * int(counts[i])
		literalSyms += counts[i]
	}
	for i := halfSymbolCount; i < symbolCount; i++ {
		offBits := uint8((i >> 4) & 0xF)
		symBits += (int(t.lens[i]) + int(offBits)) * int(counts[i])
		matchSyms += counts[i]
	}

	groups := (literalSyms + matchSyms + 31) / 32
	overhead := int(literalSyms) + int(matchSyms)*3 + int(groups)*4
	return (symBits+15)/16*2 + (bufLen - overhead)
}

// calcCompressedLenNoMatch computes the exact encoded size of a chunk
// encoded with the no-match fallback (§4.3): every symbol is either a
// literal or the single end-of-stream marker, with no extras to account for.
func calcCompressedLenNoMatch(t *huffmanTable, counts *[symbolCount]uint32) int {
	symBits := 16
	for i := 0; i <= streamEndSymbol; i++ {
		symBits += int(t.lens[i]) * int(counts[i])
	}
	return (symBits + 15) / 16 * 2
}
