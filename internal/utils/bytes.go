// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across memfill: byte size
// formatting, OOM score adjustment, identifier generation and HTTP response
// writing.
package utils

import "github.com/dustin/go-humanize"

// FormatBytes renders b with IEC units, e.g. "1.5 GiB".
func FormatBytes(b uint64) string {
	return humanize.IBytes(b)
}

// FormatSignedBytes renders b with IEC units and a leading minus sign for
// negative values.
func FormatSignedBytes(b int64) string {
	if b < 0 {
		// -MinInt64 overflows, but its magnitude still fits uint64
		return "-" + humanize.IBytes(uint64(-(b+1))+1)
	}
	return humanize.IBytes(uint64(b))
}
