// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// matchDictionary is the sliding-window hash-chain match finder used by the
// LZ77 stage (§4.2, §9 "Hash chain ownership"). Pointers are arena-indexed
// offsets into the input buffer rather than raw addresses, per §9's
// memory-safe-reimplementation note; noPos stands in for the C original's
// null pointer.

const (
	hashBits    = 15
	hashSize    = 1 << hashBits
	hashMask    = hashSize - 1
	hashShift   = (hashBits + 2) / 3 // = 5, three updates move the first byte to bits 10-14
	windowSize  = chunkSize << 1     // 131072 = 2x64KiB
	windowMask  = windowSize - 1
	maxOffset   = 0xFFFF
	maxChain    = 11
	niceLength  = 48
	minMatchLen = 3
)

// noPos marks an empty hash-chain head or "no predecessor" window slot.
const noPos = ^uint32(0)

// matchDictionary holds the hash table and window chain arrays for one
// compress call. Pointers are offsets into the shared input slice.
type matchDictionary struct {
	in []byte

	start uint32 // first valid pointer
	end   uint32 // one past the last input byte
	end2  uint32 // end-2: one past the last pointer usable as a 3-byte hash prefix

	table  [hashSize]uint32  // table[h] = most recent pointer hashing to h, or noPos
	window [windowSize]uint32 // window[windowPos(p)] = previous pointer sharing p's hash
}

// windowPos maps an input pointer to its slot in the window ring buffer.
func windowPos(p uint32) uint32 {
	return p & windowMask
}

// hashUpdate folds one more byte into a progressive 3-byte hash.
func hashUpdate(h uint32, b byte) uint32 {
	return ((h << hashShift) ^ uint32(b)) & hashMask
}

// hash3 computes the hash of the 3-byte prefix starting at in[p].
func hash3(in []byte, p uint32) uint32 {
	h := hashUpdate(0, in[p])
	h = hashUpdate(h, in[p+1])
	h = hashUpdate(h, in[p+2])
	return h
}

// initDictionary resets d for a fresh compress call over in[0:len(in)].
func (d *matchDictionary) initDictionary(in []byte) {
	d.in = in
	d.start = 0
	d.end = uint32(len(in)) //nolint:gosec // G115: input bounded by caller, chunk math keeps this in range
	if d.end >= 2 {
		d.end2 = d.end - 2
	} else {
		d.end2 = 0
	}
	for i := range d.table {
		d.table[i] = noPos
	}
}

// addOne inserts a single pointer into the dictionary's hash chains.
// Named per §9 "Variadic add" instead of the reference's overloaded Add().
func (d *matchDictionary) addOne(p uint32) {
	if p >= d.end2 {
		return
	}
	h := hash3(d.in, p)
	d.window[windowPos(p)] = d.table[h]
	d.table[h] = p
}

// addRange inserts every pointer in [p, p+n) into the dictionary's hash
// chains, in increasing order (so each chain head ends up most-recent-first).
func (d *matchDictionary) addRange(p, n uint32) {
	end := p + n
	if end > d.end2 {
		end = d.end2
	}
	for ; p < end; p++ {
		h := hash3(d.in, p)
		d.window[windowPos(p)] = d.table[h]
		d.table[h] = p
	}
}

// fill bulk-inserts every pointer in the current 64 KiB chunk starting at
// chunkStart, equivalent to addRange(chunkStart, chunkSize) but written as
// a tight loop matching the reference Fill() (§4.2 "Fill").
func (d *matchDictionary) fill(chunkStart uint32) {
	if chunkStart >= d.end2 {
		return
	}
	endx := chunkStart + chunkSize
	if endx > d.end2 {
		endx = d.end2
	}
	for p := chunkStart; p < endx; p++ {
		h := hash3(d.in, p)
		d.window[windowPos(p)] = d.table[h]
		d.table[h] = p
	}
}

// matchLength returns how many leading bytes of in[x:] and in[p:] agree,
// stopping at end (exclusive).
func matchLength(in []byte, x, p, end uint32) uint32 {
	start := p
	for p < end && in[x] == in[p] {
		x++
		p++
	}
	return p - start
}

// find searches the hash chain anchored at p for the longest match. p must
// already have been inserted (via fill/addOne/addRange): the chain walk
// starts at window[windowPos(p)], which fill's insertion left holding
// whatever occupied table[hash(p)] immediately before p overwrote it, i.e.
// the nearest earlier position sharing p's hash (§9 "Hash chain ownership").
// find returns the match length (>=3) and sets *offset to p-x, or returns a
// length below 3 (no usable match) leaving *offset unspecified.
func (d *matchDictionary) find(p uint32, offset *uint32) uint32 {
	endx := d.end
	var xend uint32
	if p > maxOffset {
		xend = p - maxOffset
	} else {
		xend = 0
	}

	best := uint32(2)
	chain := maxChain
	for x := d.window[windowPos(p)]; chain > 0 && x != noPos && x >= xend; x, chain = d.window[windowPos(x)], chain-1 {
		if d.in[x] == d.in[p] && d.in[x+1] == d.in[p+1] {
			// byte 2 is guaranteed equal by the hashing function
			l := matchLength(d.in, x, p, endx)
			if l > best {
				*offset = p - x
				best = l
				if best >= niceLength {
					break
				}
			}
		}
	}
	return best
}
