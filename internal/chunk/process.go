// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chunk

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/internal/utils"
	"golang.org/x/sys/unix"
)

// Process is a [Handle] backed by a child process started by
// [ProcessSpawner]. It is safe for concurrent use.
type Process struct {
	size        uint64
	pid         int
	cmd         *exec.Cmd
	done        <-chan struct{}
	freeTimeout time.Duration
	log         *logger.Logger

	mu    sync.Mutex
	alive bool
}

// newProcess wraps a started command. done must be closed once cmd.Wait
// has returned.
func newProcess(size uint64, cmd *exec.Cmd, done <-chan struct{}, freeTimeout time.Duration, log *logger.Logger) *Process {
	return &Process{
		size:        size,
		pid:         cmd.Process.Pid,
		cmd:         cmd,
		done:        done,
		freeTimeout: freeTimeout,
		log:         log,
		alive:       true,
	}
}

// PID implements [Handle].
func (p *Process) PID() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.alive {
		return 0
	}
	return p.pid
}

// Size implements [Handle].
func (p *Process) Size() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.alive {
		return 0
	}
	return p.size
}

// Check implements [Handle].
func (p *Process) Check() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.alive {
		return
	}

	select {
	case <-p.done:
		p.reapLocked()
	default:
	}
}

// Free implements [Handle]. The child is woken with SIGCONT and given
// freeTimeout to exit before it is killed.
func (p *Process) Free() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.alive {
		return 0
	}

	if err := p.cmd.Process.Signal(unix.SIGCONT); err != nil && !errors.Is(err, os.ErrProcessDone) {
		p.log.Warn().Err(err).Int("pid", p.pid).Msg("error signalling chunk process")
	}

	timer := time.NewTimer(p.freeTimeout)
	defer timer.Stop()

	select {
	case <-p.done:
	case <-timer.C:
		p.log.Warn().Int("pid", p.pid).Dur("timeout", p.freeTimeout).Msg("chunk process did not exit, killing it")
		_ = p.cmd.Process.Kill()
		<-p.done
	}

	p.reapLocked()
	return p.size
}

func (p *Process) reapLocked() {
	p.alive = false

	event := p.log.Info().Int("pid", p.pid).Str("size", utils.FormatBytes(p.size))

	state := p.cmd.ProcessState
	if state == nil {
		event.Msg("chunk process gone and de-allocated")
		return
	}

	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		event.Str("signal", ws.Signal().String()).Msg("chunk process killed and de-allocated")
		return
	}

	event.Int("code", state.ExitCode()).Msg("chunk process exited and de-allocated")
}
