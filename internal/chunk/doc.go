// Package chunk holds memory in child processes.
//
// Go cannot fork a running process, so a chunk is a re-execution of the
// memfill binary with the hidden [ChildCommand] argument. The child maps an
// anonymous region, writes a random byte over every page, reports readiness
// on its stdout and then sleeps until SIGCONT (release), SIGTERM or SIGINT.
// The controller keeps a [Process] handle per child; if the kernel OOM killer
// reaps a child, the handle notices on the next [Process.Check].
package chunk
