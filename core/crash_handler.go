package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
	crashExit    = os.Exit
)

// SetCrashCleanup registers the terminal reset run before a crash report is printed
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// HandleCrash resets the terminal, prints r with a stack trace and exits
// No-op when r is nil, so it can be called as HandleCrash(recover())
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashMu.Unlock()
	if cleanup != nil {
		cleanup()
	}

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mHOOPSHOT CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash restores the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}
