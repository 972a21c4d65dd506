// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

import "unsafe"

// safeEnvelopeSlack is the per-chunk alignment slack added to a full
// chunk's safe-envelope threshold (§4.1 "Safe-envelope rule").
const safeEnvelopeSlack = 2

// lastChunkSlack is added to the final (possibly short) chunk's threshold
// to allow room for extras and the end-of-stream symbol (§4.1).
const lastChunkSlack = 36

// Compress compresses src and returns a freshly allocated buffer sized
// exactly to the result. It allocates dst via MaxCompressedSize and
// delegates to CompressTo.
func Compress(src []byte) ([]byte, error) {
	dst := make([]byte, MaxCompressedSize(len(src)))
	n, err := CompressTo(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// CompressTo compresses src into dst, which must not overlap src. It
// returns the number of bytes written to dst, or an error:
//
//   - ErrInvalidArgument if src and dst overlap.
//   - ErrOutputOverrun if dst is too small to hold the compressed stream.
//
// src is split into separately coded 64 KiB chunks (§4.1); each is matched
// against a sliding window shared across chunks (§4.2 "Fill"), Huffman
// coded with the fast builder, and re-coded with the slower optimal builder
// plus a literal-only fallback whenever the fast table would not fit the
// chunk's safe envelope (§4.1).
func CompressTo(dst, src []byte) (int, error) {
	if buffersOverlap(dst, src) {
		return 0, ErrInvalidArgument
	}

	if len(src) == 0 {
		if len(dst) < minData {
			return 0, ErrOutputOverrun
		}
		return writeEmptyChunk(dst), nil
	}

	d := acquireMatchDictionary()
	defer releaseMatchDictionary(d)
	d.initDictionary(src)

	buf := make([]byte, lz77BufCap)
	var counts [symbolCount]uint32

	outPos := 0
	pos := uint32(0)
	remaining := len(src)

	for remaining > chunkSize {
		n, err := compressChunk(src, pos, chunkSize, false, buf, &counts, d, dst[outPos:])
		if err != nil {
			return 0, err
		}
		outPos += n
		pos += chunkSize
		remaining -= chunkSize
	}

	n, err := compressChunk(src, pos, uint32(remaining), true, buf, &counts, d, dst[outPos:]) //nolint:gosec // G115: remaining <= chunkSize
	if err != nil {
		return 0, err
	}
	outPos += n

	return outPos, nil
}

// compressChunk runs the full per-chunk pipeline (§4.1): LZ77 match, fast
// Huffman, safe-envelope check, optional fallback to no-match + slow
// Huffman, then header + bitstream emission into out. Returns the number of
// bytes written to out.
func compressChunk(in []byte, pos, length uint32, isLastChunk bool, buf []byte, counts *[symbolCount]uint32, d *matchDictionary, out []byte) (int, error) {
	bufLen := compressLZ77(in, pos, length, isLastChunk, buf, counts, d)
	t := buildFastCodes(counts)
	compLen := calcCompressedLen(t, counts, bufLen)

	threshold := int(length) + lastChunkSlack
	if !isLastChunk {
		threshold = chunkSize + safeEnvelopeSlack
	}
	if compLen > threshold {
		bufLen = compressNoMatch(in, pos, length, isLastChunk, buf, counts)
		t = buildSlowCodes(counts)
		compLen = calcCompressedLenNoMatch(t, counts)
	}

	need := halfSymbolCount + compLen
	if len(out) < need {
		return 0, ErrOutputOverrun
	}

	writeLengthHeader(out, t)
	compressEncode(buf[:bufLen], t, out[halfSymbolCount:])

	return need, nil
}

// writeLengthHeader packs t's 512 code lengths two-per-byte into the first
// halfSymbolCount bytes of out: symbol 2i in the low nibble, symbol 2i+1 in
// the high nibble (§6 "Wire format").
func writeLengthHeader(out []byte, t *huffmanTable) {
	for i := 0; i < halfSymbolCount; i++ {
		out[i] = t.lens[2*i] | t.lens[2*i+1]<<4
	}
}

// writeEmptyChunk writes the canonical 260-byte stream for zero-length
// input (§6 "End-of-stream", §8 scenario 1): a 256-byte header with only
// the end-of-stream symbol's length set to 1, followed by two zero 16-bit
// words. This byte pattern is taken from the reference implementation's
// dead "in_len == 0 after chunking" branch (its chunking loop can never
// actually produce a zero-length final chunk from nonzero input), reused
// here for the genuinely empty-input case that spec.md requires to produce
// this exact output.
func writeEmptyChunk(dst []byte) int {
	for i := 0; i < minData; i++ {
		dst[i] = 0
	}
	dst[streamEndSymbol>>1] = streamEndLen1
	return minData
}

// buffersOverlap reports whether a and b share any backing memory.
func buffersOverlap(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[0]))
	aEnd := aStart + uintptr(len(a))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	bEnd := bStart + uintptr(len(b))
	return aStart < bEnd && bStart < aEnd
}
