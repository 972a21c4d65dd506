// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// Test-only reference decoder, used exclusively to verify that CompressTo's
// output round-trips (§8 "Determinism"/round-trip properties). It is driven
// by the expected output length of each chunk rather than by recognizing an
// end-of-stream symbol value, since the match-descriptor symbol space and
// the end-of-stream symbol legitimately share the same numeric code
// (an offset-1, length-3 match and "stream end" both canonicalize to symbol
// 0x100) and are disambiguated only by whether the caller still expects more
// output bytes, exactly as a real decoder driven by a known chunk size would.

func unpackLengthHeader(h []byte) [symbolCount]uint8 {
	var lens [symbolCount]uint8
	for i := 0; i < halfSymbolCount; i++ {
		lens[2*i] = h[i] & 0xF
		lens[2*i+1] = h[i] >> 4
	}
	return lens
}

type inputBitstream struct {
	in       []byte
	pos      int
	bitBuf   uint32
	bitCount uint8
}

func newInputBitstream(in []byte) *inputBitstream {
	b := &inputBitstream{in: in}
	b.bitBuf = uint32(getUint16LE(in[0:]))<<16 | uint32(getUint16LE(in[2:]))
	b.bitCount = 32
	b.pos = 4
	return b
}

func (b *inputBitstream) peek(n uint8) uint32 {
	return b.bitBuf >> (32 - n)
}

func (b *inputBitstream) consume(n uint8) {
	b.bitBuf <<= n
	b.bitCount -= n
	// Mirrors outputBitstream.writeBits's "> 16" flush trigger: a refill
	// happens only once fewer than 16 bits remain, not merely <= 16, or
	// back-to-back exact multiples of 16 would desync the raw-byte cursor
	// from the encoder's reservation points.
	if b.bitCount < 16 {
		next := getUint16LE(b.in[b.pos:])
		b.pos += 2
		b.bitBuf |= uint32(next) << (16 - b.bitCount)
		b.bitCount += 16
	}
}

func (b *inputBitstream) readBits(n uint8) uint32 {
	v := b.peek(n)
	b.consume(n)
	return v
}

func (b *inputBitstream) readRawByte() byte {
	v := b.in[b.pos]
	b.pos++
	return v
}

func (b *inputBitstream) readRawUint16() uint16 {
	v := getUint16LE(b.in[b.pos:])
	b.pos += 2
	return v
}

func (b *inputBitstream) readRawUint32() uint32 {
	v := getUint32LE(b.in[b.pos:])
	b.pos += 4
	return v
}

// buildDecodeIndex inverts a canonical table into a (length, code) -> symbol
// lookup for the reference decoder.
func buildDecodeIndex(lens *[symbolCount]uint8, codes *[symbolCount]uint16) map[uint8]map[uint32]uint16 {
	idx := make(map[uint8]map[uint32]uint16)
	for sym := 0; sym < symbolCount; sym++ {
		l := lens[sym]
		if l == 0 {
			continue
		}
		if idx[l] == nil {
			idx[l] = make(map[uint32]uint16)
		}
		idx[l][uint32(codes[sym])] = uint16(sym)
	}
	return idx
}

func decodeSymbol(b *inputBitstream, idx map[uint8]map[uint32]uint16) uint16 {
	for length := uint8(1); length <= huffBitsMax; length++ {
		if m, ok := idx[length]; ok {
			if sym, ok2 := m[b.peek(length)]; ok2 {
				b.consume(length)
				return sym
			}
		}
	}
	panic("xpresshuff test decoder: no matching huffman code")
}

// decodeChunk decodes exactly outLen payload bytes starting at a 256-byte
// code-length header and appends them to out, which holds the output of all
// earlier chunks (matches may reach back into it, since the encoder's match
// window is shared across chunks). It returns the extended output and the
// number of bytes of data consumed by this chunk (header + bitstream).
func decodeChunk(data []byte, out []byte, outLen int) ([]byte, int) {
	lens := unpackLengthHeader(data[:halfSymbolCount])
	codes := assignCanonicalCodes(&lens)
	idx := buildDecodeIndex(&lens, &codes)

	bstr := newInputBitstream(data[halfSymbolCount:])
	end := len(out) + outLen

	for len(out) < end {
		sym := decodeSymbol(bstr, idx)
		if sym < streamEndSymbol {
			out = append(out, byte(sym))
			continue
		}

		matchCode := uint8(sym - streamEndSymbol)
		offBits := matchCode >> 4
		lenNibble := matchCode & 0xF

		lenMinus3 := uint32(lenNibble)
		if lenNibble == 0xF {
			len8 := bstr.readRawByte()
			switch {
			case len8 != 0xFF:
				lenMinus3 = 0xF + uint32(len8)
			default:
				len16 := bstr.readRawUint16()
				if len16 != 0 {
					lenMinus3 = uint32(len16)
				} else {
					lenMinus3 = bstr.readRawUint32()
				}
			}
		}

		off := bstr.readBits(offBits) | (uint32(1) << offBits)
		matchLen := lenMinus3 + 3
		for i := uint32(0); i < matchLen; i++ {
			out = append(out, out[uint32(len(out))-off])
		}
	}

	return out, halfSymbolCount + bstr.pos
}

// decodeAll decodes a full CompressTo/Compress output back to the original
// bytes, given the original uncompressed length.
func decodeAll(compressed []byte, originalLen int) []byte {
	if originalLen == 0 {
		return nil
	}

	out := make([]byte, 0, originalLen)
	pos := 0
	remaining := originalLen
	for remaining > 0 {
		n := remaining
		if n > chunkSize {
			n = chunkSize
		}
		var consumed int
		out, consumed = decodeChunk(compressed[pos:], out, n)
		pos += consumed
		remaining -= n
	}
	return out
}
