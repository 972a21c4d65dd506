// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

/*
Package xpresshuff implements the compressor half of the Xpress-Huffman
format used by Windows (WIM images, hibernation files, AD replication).

Input is split into 64 KiB chunks (the last may be shorter). Each chunk
gets its own canonical Huffman code table over a 512-symbol alphabet:
literal bytes 0-255, an end-of-stream marker at 256, and LZ77 match
descriptors at 256-511 (an offset-1, length-3 match shares symbol 256 with
the end-of-stream marker). Matching uses a bounded hash-chain over a
128 KiB sliding window that is kept across chunks, so a match may reach
back up to 65535 bytes into earlier chunks; code construction tries a fast Moffat-Katajainen
builder first and falls back to the optimal but slower Package-Merge
builder (plus literal-only encoding) whenever the fast table would not
fit the chunk's safe envelope.

	out, err := xpresshuff.Compress(data)

Callers that own a preallocated buffer can avoid the extra allocation:

	dst := make([]byte, xpresshuff.MaxCompressedSize(len(data)))
	n, err := xpresshuff.CompressTo(dst, data)
	out := dst[:n]

The decompressor is not part of this package.
*/
package xpresshuff
