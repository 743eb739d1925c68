// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chunk

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/internal/utils"
	"golang.org/x/sys/unix"
)

// IsChildInvocation reports whether args (as in os.Args) request chunk
// holder mode.
func IsChildInvocation(args []string) bool {
	return len(args) > 1 && args[1] == ChildCommand
}

// RunChild is the entrypoint of a chunk holder. args are the arguments after
// the program name. It returns the process exit code.
func RunChild(args []string, ready, logOut io.Writer) int {
	log := newChildLogger(logOut)

	if len(args) != 2 || args[0] != ChildCommand {
		log.Error().Err(ErrInvalidChildArgs).Strs("args", args).Send()
		return 2
	}

	size, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		log.Error().Err(fmt.Errorf("%w: %w", ErrInvalidChildArgs, err)).Send()
		return 2
	}

	// the controller may run exempt from the OOM killer; chunks must stay
	// reclaimable
	if _, err = utils.NewOOMScoreAdjuster().Reset(); err != nil {
		log.Warn().Err(err).Msg("failed to reset OOM score")
	}

	if err = Hold(context.Background(), size, ready, log); err != nil {
		log.Error().Err(err).Msg("error holding memory")
		return 1
	}

	return 0
}

// Hold maps size bytes of anonymous memory, touches every byte and writes
// [ReadyMessage] to ready. It then blocks until SIGCONT, SIGTERM, SIGINT or
// cancellation of ctx, and unmaps the memory.
func Hold(ctx context.Context, size uint64, ready io.Writer, log *logger.Logger) error {
	if size == 0 {
		return ErrEmptyChunk
	}
	if size > math.MaxInt {
		return fmt.Errorf("%w: %d", ErrChunkTooLarge, size)
	}

	// subscribe before announcing readiness so an early release is not lost
	release := make(chan os.Signal, 1)
	signal.Notify(release, unix.SIGCONT, unix.SIGTERM, os.Interrupt)
	defer signal.Stop(release)

	mem, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return fmt.Errorf("error mapping %s: %w", utils.FormatBytes(size), err)
	}
	defer func() {
		if err := unix.Munmap(mem); err != nil {
			log.Warn().Err(err).Msg("error unmapping memory")
		}
	}()

	pattern := byte(rand.IntN(256))
	fill(mem, pattern)
	if mem[0] != pattern || mem[len(mem)-1] != pattern {
		return ErrPatternMismatch
	}

	log.Info().Str("size", utils.FormatBytes(size)).Msg("allocated")

	if _, err = fmt.Fprintln(ready, ReadyMessage); err != nil {
		return fmt.Errorf("error reporting readiness: %w", err)
	}

	select {
	case <-ctx.Done():
	case sig := <-release:
		log.Debug().Str("signal", sig.String()).Msg("releasing memory")
	}

	return nil
}

// fill sets every byte of b to v, doubling the initialised prefix each pass.
func fill(b []byte, v byte) {
	if len(b) == 0 {
		return
	}
	b[0] = v
	for n := 1; n < len(b); n *= 2 {
		copy(b[n:], b[:n])
	}
}
