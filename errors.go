// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

import "errors"

// Sentinel errors returned by Compress and CompressTo.
var (
	// ErrOutputOverrun is returned when out is too small to hold the compressed
	// stream. No partial output should be treated as usable.
	ErrOutputOverrun = errors.New("xpresshuff: insufficient output buffer")
	// ErrInvalidArgument is returned for programming-error preconditions the
	// reference C implementation leaves as undefined behavior: overlapping
	// in/out buffers. A nil or empty input is not an error.
	ErrInvalidArgument = errors.New("xpresshuff: invalid argument")
)
