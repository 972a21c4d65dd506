// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// compressEncode re-walks the intermediate token buffer produced by
// compressLZ77/compressNoMatch and re-emits it using t's canonical codes,
// mirroring the exact byte layout of length extensions and offset bits
// verbatim into the output bitstream (§4.7 "Token-group walk").
func compressEncode(buf []byte, t *huffmanTable, out []byte) {
	var bstr outputBitstream
	bstr.initBitstream(out)

	pos := 0
	for pos < len(buf) {
		mask := getUint32LE(buf[pos:])
		pos += 4

		i := 32
		for mask != 0 && pos < len(buf) {
			if mask&1 != 0 {
				sym := buf[pos]
				pos++
				off := getUint16LE(buf[pos:])
				pos += 2

				bstr.encodeSymbol(t, streamEndSymbol|uint16(sym))

				if sym&0xF == 0xF {
					len8 := buf[pos]
					pos++
					bstr.writeRawByte(len8)
					if len8 == 0xFF {
						len16 := getUint16LE(buf[pos:])
						pos += 2
						bstr.writeRawUint16(len16)
						if len16 == 0 {
							len32 := getUint32LE(buf[pos:])
							pos += 4
							bstr.writeRawUint32(len32)
						}
					}
				}

				bstr.writeBits(uint32(off), sym>>4)
			} else {
				bstr.encodeSymbol(t, uint16(buf[pos]))
				pos++
			}
			i--
			mask >>= 1
		}

		end := pos + i
		if end > len(buf) {
			end = len(buf)
		}
		for ; pos < end; pos++ {
			bstr.encodeSymbol(t, uint16(buf[pos]))
		}
	}

	bstr.finish()
}
