// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chunk

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for a writer and a polling reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestFill(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 1000, 4096, 4097} {
		b := make([]byte, n)
		fill(b, 0xAB)
		for i, v := range b {
			if v != 0xAB {
				t.Fatalf("len %d: byte %d = %#x", n, i, v)
			}
		}
	}
}

func TestHold_ReportsReadyAndReleasesOnCancel(t *testing.T) {
	ready := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- Hold(ctx, 64<<10, ready, logger.Nop())
	}()

	require.Eventually(t, func() bool {
		return ready.String() == ReadyMessage+"\n"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Hold did not return after cancellation")
	}
}

func TestHold_ZeroSize(t *testing.T) {
	err := Hold(context.Background(), 0, io.Discard, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyChunk)
}

func TestIsChildInvocation(t *testing.T) {
	assert.True(t, IsChildInvocation([]string{"memfill", ChildCommand, "1024"}))
	assert.False(t, IsChildInvocation([]string{"memfill", "1G", "absolute", "1m"}))
	assert.False(t, IsChildInvocation([]string{"memfill"}))
}

func TestRunChild_InvalidArgs(t *testing.T) {
	var logs bytes.Buffer

	assert.Equal(t, 2, RunChild([]string{ChildCommand}, io.Discard, &logs))
	assert.Equal(t, 2, RunChild([]string{ChildCommand, "lots"}, io.Discard, &logs))
	assert.Equal(t, 2, RunChild([]string{"other", "1024"}, io.Discard, &logs))
	assert.Contains(t, logs.String(), ErrInvalidChildArgs.Error())
}

func TestRunChild_ZeroSize(t *testing.T) {
	assert.Equal(t, 1, RunChild([]string{ChildCommand, "0"}, io.Discard, io.Discard))
}
