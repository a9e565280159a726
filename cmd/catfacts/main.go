// catfacts — All About Cats, in the terminal.
//
// Usage:
//
//	catfacts [flags]
//	catfacts snapshot [--tab breeds] [--image 2] [--width 80]
//
// Flags:
//
//	--interval        Time each image stays on screen (default: 5s)
//	--no-animations   Paint every frame at full intensity
//	--log-file        Write JSON logs to this file
//	--debug           Log at debug level (to a temp file if no --log-file)
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
)

const version = "0.1.0"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}
