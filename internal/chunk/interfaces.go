// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chunk

//go:generate mockgen -source=interfaces.go -destination=../mock/chunk_handle_mock.go -package=mock

// Handle is a live allocation owned by the controller.
type Handle interface {
	// PID returns the process id holding the memory, 0 once it is gone.
	PID() int
	// Size returns the bytes held, 0 once the holder is gone.
	Size() uint64
	// Check notices, without blocking, whether the holder has exited.
	Check()
	// Free releases the memory and returns the number of bytes released.
	Free() uint64
}
