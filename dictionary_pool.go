// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

import "sync"

// matchDictionaryPool recycles the match finder's hash table and window
// arrays (hashSize + windowSize uint32s, 640 KiB) across calls.
var matchDictionaryPool = sync.Pool{
	New: func() any {
		return &matchDictionary{}
	},
}

func acquireMatchDictionary() *matchDictionary {
	return matchDictionaryPool.Get().(*matchDictionary)
}

func releaseMatchDictionary(d *matchDictionary) {
	if d == nil {
		return
	}
	d.in = nil
	matchDictionaryPool.Put(d)
}
