// Package core holds process-wide crash handling for the terminal host.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	crashLogger = zerolog.Nop()

	// crashOutput and exit are replaced in tests
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// SetCrashScreen registers the screen restored before a crash report
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// SetCrashLogger registers the logger that records crashes
func SetCrashLogger(l zerolog.Logger) {
	crashMu.Lock()
	crashLogger = l
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen, logger := crashScreen, crashLogger
	crashScreen = nil
	crashMu.Unlock()

	// Terminal must leave raw mode before anything is printed
	if screen != nil {
		screen.Fini()
	}

	stack := debug.Stack()
	logger.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	fmt.Fprintf(crashOutput, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", stack)

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
