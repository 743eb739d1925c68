// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPercent bool
		wantBytes   uint64
		wantPct     uint16
	}{
		{name: "plain bytes", input: "1024", wantBytes: 1024},
		{name: "decimal mega", input: "512M", wantBytes: 512_000_000},
		{name: "decimal giga lowercase", input: "1g", wantBytes: 1_000_000_000},
		{name: "binary gibi", input: "2GiB", wantBytes: 2 << 30},
		{name: "binary kibi", input: "4KiB", wantBytes: 4096},
		{name: "fractional", input: "1.5G", wantBytes: 1_500_000_000},
		{name: "surrounding spaces", input: "  10K ", wantBytes: 10_000},
		{name: "percent", input: "75%", wantPercent: true, wantPct: 75},
		{name: "zero percent", input: "0%", wantPercent: true, wantPct: 0},
		{name: "full percent", input: "100%", wantPercent: true, wantPct: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPercent, got.IsPercent())
			assert.Equal(t, tt.wantBytes, got.Bytes())
			assert.Equal(t, tt.wantPct, got.Percent())
		})
	}
}

func TestParseSize_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := ParseSize("   ")
		assert.ErrorIs(t, err, ErrEmptySize)
	})

	t.Run("percent above 100", func(t *testing.T) {
		_, err := ParseSize("150%")
		assert.ErrorIs(t, err, ErrPercentOutOfRange)
	})

	t.Run("bytes above int64 range", func(t *testing.T) {
		for _, input := range []string{"9EiB", "8EiB", "10EB"} {
			_, err := ParseSize(input)
			assert.ErrorIs(t, err, ErrSizeOutOfRange, input)
		}
	})

	t.Run("7EiB is accepted", func(t *testing.T) {
		s, err := ParseSize("7EiB")
		require.NoError(t, err)
		assert.Less(t, s.Bytes(), uint64(math.MaxInt64))
	})

	for _, input := range []string{"abc", "-5%", "x%", "12XB", "70000%"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSize(input)
			assert.Error(t, err)
		})
	}
}

func TestSize_OfTotal(t *testing.T) {
	const total = 8 << 30

	assert.Equal(t, uint64(total/2), PercentSize(50).OfTotal(total))
	assert.Equal(t, uint64(0), PercentSize(0).OfTotal(total))
	assert.Equal(t, uint64(123), BytesSize(123).OfTotal(total))
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "42%", PercentSize(42).String())
	assert.Equal(t, "1.0 GiB", BytesSize(1<<30).String())
}

func TestSize_UnmarshalText(t *testing.T) {
	var s Size
	require.NoError(t, s.UnmarshalText([]byte("25%")))
	assert.Equal(t, PercentSize(25), s)

	assert.Error(t, s.UnmarshalText([]byte("nope")))
	// failed unmarshal leaves the previous value intact
	assert.Equal(t, PercentSize(25), s)
}

func TestSize_IsZero(t *testing.T) {
	assert.True(t, Size{}.IsZero())
	assert.False(t, PercentSize(0).IsZero())
	assert.False(t, BytesSize(1).IsZero())
}
