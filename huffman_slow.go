// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// collection is one "package" of the package-merge algorithm: the count is
// the sum of everything merged into it, and symbols[s] counts how many
// times symbol s has been folded in (§4.5).
type collection struct {
	symbols [symbolCount]uint8
	count   uint32
}

// buildSlowCodes builds a length-limited canonical Huffman table using the
// Package-Merge algorithm of Larmore and Hirschberg (§4.5). Unlike the fast
// builder it always produces a provably optimal code, at significantly
// higher cost; used only when the fast table is rejected by the
// safe-envelope rule (§4.1).
func buildSlowCodes(counts *[symbolCount]uint32) *huffmanTable {
	t := &huffmanTable{}

	var symsByCount, temp [symbolCount]uint16
	n := 0
	for i := 0; i < symbolCount; i++ {
		if counts[i] != 0 {
			symsByCount[n] = uint16(i)
			t.lens[i] = huffBitsMax
			n++
		}
	}
	if n == 0 {
		return t
	}

	mergeSortBy(symsByCount[:n], temp[:n], counts[:])

	if n == 1 {
		t.lens[symsByCount[0]] = 1
		t.codes = assignCanonicalCodes(&t.lens)
		return t
	}

	cols := make([]collection, symbolCount)
	nextCols := make([]collection, symbolCount)
	colsLen := 0

	for iter := 0; iter < huffBitsMax; iter++ {
		colsPos, pos := 0, 0
		nextColsLen := 0

		for (colsLen-colsPos)+(n-pos) > 1 {
			nc := &nextCols[nextColsLen]
			*nc = collection{}
			for k := 0; k < 2; k++ {
				if pos >= n || (colsPos < colsLen && cols[colsPos].count < counts[symsByCount[pos]]) {
					nc.count += cols[colsPos].count
					for s := 0; s < symbolCount; s++ {
						nc.symbols[s] += cols[colsPos].symbols[s]
					}
					colsPos++
				} else {
					nc.count += counts[symsByCount[pos]]
					nc.symbols[symsByCount[pos]]++
					pos++
				}
			}
			nextColsLen++
		}

		switch {
		case colsPos < colsLen:
			syms := cols[colsPos].symbols
			for s := 0; s < symbolCount; s++ {
				t.lens[s] -= syms[s]
			}
		case pos < n:
			t.lens[symsByCount[pos]]--
		}

		cols, nextCols = nextCols, cols
		colsLen = nextColsLen
	}

	t.codes = assignCanonicalCodes(&t.lens)
	return t
}
