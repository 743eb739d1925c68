//go:build linux

package chunk

import "syscall"

// childSysProcAttr makes the kernel terminate a chunk when the controller
// dies, so memory is never leaked by orphaned holders.
func childSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Pdeathsig: syscall.SIGTERM}
}
