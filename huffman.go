// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// huffmanTable is a per-chunk canonical Huffman code table: for every
// symbol, a code length in [0,15] (0 = unused) and its canonical code value.
type huffmanTable struct {
	lens  [symbolCount]uint8
	codes [symbolCount]uint16
}

// assignCanonicalCodes fills codes for every symbol with lens[i] > 0,
// following the standard canonical construction (§3 "Canonical codes",
// §4.4): starting at code 0, symbols are assigned codes in increasing
// length then increasing symbol-index order, doubling the running code
// value at each length boundary. Symbols with length 0 (never produced by
// the fast builder, always possible from the slow one) are left at code 0
// and excluded from the numbering.
//
// This single scan serves both Huffman backends: the fast builder never
// leaves a symbol unused (every symbol is a real leaf, §4.4), and the slow
// builder's own canonicalization step (§4.5, assigning codes from a list
// stably sorted by (length, symbol)) produces an identical result to
// scanning all symbols in increasing index order once, since a stable sort
// by length alone preserves the original increasing-index order within
// each length bucket.
func assignCanonicalCodes(lens *[symbolCount]uint8) (codes [symbolCount]uint16) {
	var minLen, maxLen uint8
	found := false
	for _, l := range lens {
		if l == 0 {
			continue
		}
		if !found {
			minLen, maxLen = l, l
			found = true
			continue
		}
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}
	if !found {
		return codes
	}

	code := uint16(0)
	for n := minLen; ; n++ {
		for i, l := range lens {
			if l == n {
				codes[i] = code
				code++
			}
		}
		if n == maxLen {
			break
		}
		code <<= 1
	}
	return codes
}
