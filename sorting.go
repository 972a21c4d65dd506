// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// Stable sort of 16-bit symbol indices keyed by a per-symbol condition value
// (§4.6). Ties preserve input order, which is what makes the canonical
// Huffman code construction reproducible: symbols of equal length must end
// up in increasing symbol-index order regardless of how the sort got there.
//
// Below sortInsertionLimit elements, insertion sort wins on overhead; above
// it, merge sort into a scratch buffer avoids insertion sort's O(n^2) tail.
// Both variants are hand-rolled rather than built on sort.SliceStable: the
// spec fixes this exact algorithm (and its 90-element threshold) as part of
// the determinism contract (§8 "Determinism"), so a generic library sort
// with a different (and unspecified) internal strategy is not a drop-in
// substitute here.

const sortInsertionLimit = 90

type sortKey interface {
	~uint8 | ~uint32
}

// insertionSortBy stably sorts syms[0:len(syms)] using conditions[syms[x]]
// as the key.
func insertionSortBy[T sortKey](syms []uint16, conditions []T) {
	for i := 1; i < len(syms); i++ {
		x := syms[i]
		cond := conditions[x]
		j := i
		for j > 0 && conditions[syms[j-1]] > cond {
			syms[j] = syms[j-1]
			j--
		}
		syms[j] = x
	}
}

// mergeSortBy stably sorts syms using temp as scratch space, keyed by
// conditions[syms[x]].
func mergeSortBy[T sortKey](syms, temp []uint16, conditions []T) {
	n := len(syms)
	if n < sortInsertionLimit {
		insertionSortBy(syms, conditions)
		return
	}

	m := n / 2
	mergeSortBy(syms[:m], temp[:m], conditions)
	mergeSortBy(syms[m:], temp[m:], conditions)

	copy(temp, syms)
	i, j, k := 0, 0, m
	for j < m && k < n {
		if conditions[temp[k]] < conditions[temp[j]] {
			syms[i] = temp[k]
			k++
		} else {
			syms[i] = temp[j]
			j++
		}
		i++
	}
	if j < m {
		copy(syms[i:], temp[j:m])
	} else if k < n {
		copy(syms[i:], temp[k:n])
	}
}
