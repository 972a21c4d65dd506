// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// outputBitstream is the dual-slot bit-packed encoder (§4.7). The wire
// format is a sequence of 16-bit little-endian words with codes packed
// MSB-first; raw bytes/words (length extensions, offset bits) are
// interleaved with bit-packed codes at byte granularity.
type outputBitstream struct {
	out  []byte
	pos  int    // next byte index for raw writes
	slot [2]int // byte offsets of the two pending 16-bit words
	mask uint32 // next bits to write, left-justified
	bits uint8  // number of valid bits in mask
}

// initBitstream reserves the first 4 bytes of out for the two pending
// 16-bit slots; raw writes begin immediately after.
func (b *outputBitstream) initBitstream(out []byte) {
	b.out = out
	b.pos = 4
	b.slot[0] = 0
	b.slot[1] = 2
	b.mask = 0
	b.bits = 0
}

// writeBits packs the low n bits of v, MSB-first, n <= 16. Once more than 16
// bits have accumulated, the top 16 are flushed to slot[0] and the slots
// rotate forward.
func (b *outputBitstream) writeBits(v uint32, n uint8) {
	b.bits += n
	b.mask |= v << (32 - b.bits)
	if b.bits > 16 {
		putUint16LE(b.out[b.slot[0]:], uint16(b.mask>>16))
		b.mask <<= 16
		b.bits -= 16
		b.slot[0] = b.slot[1]
		b.slot[1] = b.pos
		b.pos += 2
	}
}

// encodeSymbol writes the canonical code for sym using t.
func (b *outputBitstream) encodeSymbol(t *huffmanTable, sym uint16) {
	b.writeBits(uint32(t.codes[sym]), t.lens[sym])
}

// writeRawByte appends a byte outside the bit-packed mask, bypassing it
// entirely and advancing only the raw write cursor.
func (b *outputBitstream) writeRawByte(v byte) {
	b.out[b.pos] = v
	b.pos++
}

// writeRawUint16 appends a little-endian 16-bit word, bypassing mask.
func (b *outputBitstream) writeRawUint16(v uint16) {
	putUint16LE(b.out[b.pos:], v)
	b.pos += 2
}

// writeRawUint32 appends a little-endian 32-bit word, bypassing mask.
func (b *outputBitstream) writeRawUint32(v uint32) {
	putUint32LE(b.out[b.pos:], v)
	b.pos += 4
}

// finish flushes the residual bits and appends a zero word so a decoder
// always has at least 16 zero-padding bits of lookahead. The total encoded
// length is computed ahead of time by sizing.go, not derived here: slot[1]
// may still be pointing into the middle of the raw tail that was already
// written by interleaved writeRawByte/writeRawUint16/writeRawUint32 calls.
func (b *outputBitstream) finish() {
	putUint16LE(b.out[b.slot[0]:], uint16(b.mask>>16))
	putUint16LE(b.out[b.slot[1]:], 0)
}

func putUint16LE(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}
