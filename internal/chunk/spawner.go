// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chunk

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/memfill/internal/logger"
)

const (
	// ChildCommand is the hidden first argument that turns memfill into a
	// chunk holder.
	ChildCommand = "__chunk"
	// ReadyMessage is written by a child on stdout once its memory is held.
	ReadyMessage = "ready"

	defaultReadyTimeout = 5 * time.Second
	defaultFreeTimeout  = 10 * time.Second
)

// SpawnerConfig configures [ProcessSpawner].
type SpawnerConfig struct {
	// Executable is the binary to re-execute. Defaults to os.Executable().
	Executable string
	// Env is appended to the controller's environment for every child.
	Env []string
	// Stderr receives child log output. Defaults to os.Stderr.
	Stderr io.Writer
	// ReadyTimeout bounds the wait for a child's readiness line.
	ReadyTimeout time.Duration
	// FreeTimeout bounds the wait for a child to exit after SIGCONT.
	FreeTimeout time.Duration
	// LogLevel and LogFormat are forwarded to children. Empty values leave
	// the inherited environment alone.
	LogLevel  string
	LogFormat string
}

// ProcessSpawner starts chunk holder processes.
type ProcessSpawner struct {
	executable   string
	env          []string
	stderr       io.Writer
	readyTimeout time.Duration
	freeTimeout  time.Duration
	log          *logger.Logger
}

// NewProcessSpawner validates cfg and fills in defaults.
func NewProcessSpawner(cfg SpawnerConfig, log *logger.Logger) (*ProcessSpawner, error) {
	executable := cfg.Executable
	if executable == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("error resolving memfill executable: %w", err)
		}
		executable = exe
	}

	s := &ProcessSpawner{
		executable:   executable,
		env:          append(append(os.Environ(), cfg.Env...), logEnv(cfg.LogLevel, cfg.LogFormat)...),
		stderr:       cfg.Stderr,
		readyTimeout: cfg.ReadyTimeout,
		freeTimeout:  cfg.FreeTimeout,
		log:          log,
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	if s.readyTimeout <= 0 {
		s.readyTimeout = defaultReadyTimeout
	}
	if s.freeTimeout <= 0 {
		s.freeTimeout = defaultFreeTimeout
	}

	return s, nil
}

// Spawn starts a child holding size bytes and blocks until it is ready. A
// child that does not become ready is killed and an error is returned.
func (s *ProcessSpawner) Spawn(ctx context.Context, size uint64) (Handle, error) {
	if size == 0 {
		return nil, ErrEmptyChunk
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("%w: %d", ErrChunkTooLarge, size)
	}

	cmd := exec.Command(s.executable, ChildCommand, strconv.FormatUint(size, 10))
	cmd.Env = s.env
	cmd.Stderr = s.stderr
	cmd.SysProcAttr = childSysProcAttr()

	// a plain pipe instead of StdoutPipe: Wait must not close the read end
	// while the readiness line is still being read
	stdout, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("error creating chunk stdout pipe: %w", err)
	}
	cmd.Stdout = stdoutW

	err = cmd.Start()
	stdoutW.Close()
	if err != nil {
		stdout.Close()
		return nil, fmt.Errorf("error starting chunk process: %w", err)
	}

	ready := make(chan error, 1)
	go func() {
		defer stdout.Close()
		ready <- awaitReady(stdout)
		// keep draining so a chatty child never blocks on a full pipe
		_, _ = io.Copy(io.Discard, stdout)
	}()

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	timer := time.NewTimer(s.readyTimeout)
	defer timer.Stop()

	var spawnErr error
	select {
	case err = <-ready:
		if err == nil {
			return newProcess(size, cmd, done, s.freeTimeout, s.log), nil
		}
		spawnErr = err
	case <-timer.C:
		spawnErr = fmt.Errorf("%w within %s", ErrNotReady, s.readyTimeout)
	case <-ctx.Done():
		spawnErr = ctx.Err()
	}

	_ = cmd.Process.Kill()
	<-done

	return nil, fmt.Errorf("chunk process %d: %w", cmd.Process.Pid, spawnErr)
}

func awaitReady(r io.Reader) error {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExitedEarly, err)
	}
	if line = strings.TrimSpace(line); line != ReadyMessage {
		return fmt.Errorf("%w: unexpected readiness line %q", ErrNotReady, line)
	}
	return nil
}
