// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// maxWeightNodes is large enough to hold every leaf (symbolCount) plus every
// internal node of the resulting binary tree (symbolCount-1), 1-indexed.
const maxWeightNodes = 2*symbolCount + 2

// buildFastCodes builds a length-limited canonical Huffman table using the
// Moffat-Katajainen in-place heap algorithm (§4.4, §9 "In-place heap
// build"): every symbol starts as a min-heap leaf keyed by
// (weight<<8)|depth, siblings are repeatedly merged into a parent node
// until one tree remains, and each leaf's code length is its hop-count to
// the root. If any length exceeds huffBitsMax, every weight is rescaled and
// the whole construction is retried; this always converges.
//
// Does not always produce optimal codes, but is fast and usually close.
func buildFastCodes(counts *[symbolCount]uint32) *huffmanTable {
	weights := make([]uint32, maxWeightNodes)
	for i := 0; i < symbolCount; i++ {
		c := counts[i]
		if c == 0 {
			c = 1
		}
		weights[i+1] = c << 8
	}

	heap := make([]uint16, symbolCount+2)
	parents := make([]uint16, maxWeightNodes)
	t := &huffmanTable{}

	for {
		heapLen := 0
		for i := 1; i <= symbolCount; i++ {
			heapPush(heap, &heapLen, weights, uint16(i))
		}

		for i := range parents {
			parents[i] = 0
		}

		nNodes := uint16(symbolCount)
		for heapLen > 1 {
			n1 := heap[1]
			heapPop(heap, &heapLen, weights)
			n2 := heap[1]
			heapPop(heap, &heapLen, weights)

			nNodes++
			parents[n1] = nNodes
			parents[n2] = nNodes

			d1, d2 := weights[n1]&0xFF, weights[n2]&0xFF
			depth := d1
			if d2 > depth {
				depth = d2
			}
			weights[nNodes] = (weights[n1] & 0xFFFFFF00) + (weights[n2] & 0xFFFFFF00) | (1 + depth)
			heapPush(heap, &heapLen, weights, nNodes)
		}

		tooLong := false
		for i := 1; i <= symbolCount; i++ {
			var j uint8
			k := uint16(i)
			for parents[k] > 0 {
				k = parents[k]
				j++
			}
			t.lens[i-1] = j
			if j > huffBitsMax {
				tooLong = true
			}
		}

		if !tooLong {
			break
		}
		for i := 1; i <= symbolCount; i++ {
			weights[i] = (1 + (weights[i] >> 9)) << 8
		}
	}

	t.codes = assignCanonicalCodes(&t.lens)
	return t
}

// heapPush inserts x into the min-heap keyed by weights, sifting up.
func heapPush(heap []uint16, heapLen *int, weights []uint32, x uint16) {
	*heapLen++
	j := *heapLen
	for j > 1 && weights[x] < weights[heap[j>>1]] {
		heap[j] = heap[j>>1]
		j >>= 1
	}
	heap[j] = x
}

// heapPop removes the current root (already read by the caller as heap[1])
// and sifts the last element down to restore heap order.
func heapPop(heap []uint16, heapLen *int, weights []uint32) {
	t := heap[*heapLen]
	*heapLen--
	heap[1] = t

	i := 1
	for {
		j := i << 1
		if j > *heapLen {
			break
		}
		if j < *heapLen && weights[heap[j+1]] < weights[heap[j]] {
			j++
		}
		if weights[t] < weights[heap[j]] {
			break
		}
		heap[i] = heap[j]
		i = j
	}
	heap[i] = t
}
