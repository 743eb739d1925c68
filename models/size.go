// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxPercent is the largest percentage accepted by [ParseSize].
const MaxPercent = 100

var (
	// ErrEmptySize is returned by [ParseSize] for blank input.
	ErrEmptySize = errors.New("size is empty")
	// ErrPercentOutOfRange is returned when a percent size exceeds [MaxPercent].
	ErrPercentOutOfRange = errors.New("percent must be between 0 and 100")
	// ErrSizeOutOfRange is returned for byte sizes that do not fit an int64.
	ErrSizeOutOfRange = errors.New("size exceeds the largest allocatable amount")
)

// Size is the amount of memory requested on the command line. It is either an
// absolute byte count or a percentage of total memory; exactly one of the two
// is meaningful, as reported by IsPercent.
type Size struct {
	bytes     uint64
	percent   uint16
	isPercent bool
}

// BytesSize returns a Size holding an absolute byte count.
func BytesSize(b uint64) Size {
	return Size{bytes: b}
}

// PercentSize returns a Size holding a percentage of total memory.
func PercentSize(p uint16) Size {
	return Size{percent: p, isPercent: true}
}

// ParseSize parses s as either "<n>%" or a humanized byte size such as
// "512M", "1G" or "2GiB". Decimal suffixes are powers of 1000, IEC suffixes
// powers of 1024.
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Size{}, ErrEmptySize
	}

	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseUint(strings.TrimSuffix(s, "%"), 10, 16)
		if err != nil {
			return Size{}, fmt.Errorf("invalid percent %q: %w", s, err)
		}
		if p > MaxPercent {
			return Size{}, fmt.Errorf("%q: %w", s, ErrPercentOutOfRange)
		}
		return PercentSize(uint16(p)), nil
	}

	b, err := humanize.ParseBytes(s)
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if b > math.MaxInt64 {
		return Size{}, fmt.Errorf("%q: %w", s, ErrSizeOutOfRange)
	}

	return BytesSize(b), nil
}

// IsPercent reports whether the size is relative to total memory.
func (s Size) IsPercent() bool {
	return s.isPercent
}

// Bytes returns the absolute byte count. It is zero for percent sizes.
func (s Size) Bytes() uint64 {
	return s.bytes
}

// Percent returns the percentage. It is zero for byte sizes.
func (s Size) Percent() uint16 {
	return s.percent
}

// IsZero reports whether s is the zero Size, i.e. it was never set.
func (s Size) IsZero() bool {
	return s == Size{}
}

// OfTotal resolves the size against total memory and returns the byte count.
func (s Size) OfTotal(total uint64) uint64 {
	if !s.isPercent {
		return s.bytes
	}
	return uint64(float64(total) * float64(s.percent) / 100.0)
}

// String renders the size the way it would be written on the command line.
func (s Size) String() string {
	if s.isPercent {
		return strconv.FormatUint(uint64(s.percent), 10) + "%"
	}
	return humanize.IBytes(s.bytes)
}

// UnmarshalText implements encoding.TextUnmarshaler so that Size can be read
// from environment variables, JSON and YAML.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
