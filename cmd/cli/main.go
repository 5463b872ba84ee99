package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/gridctl/internal/app"
	"github.com/vk/gridctl/internal/cli"
	"github.com/vk/gridctl/internal/config"
)

// exitCoder is implemented by errors that carry a process exit code.
type exitCoder interface {
	ExitCode() int
}

// main is the entrypoint for the gridctl binary.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			// Argument parse failures happen before the application
			// logger exists, so they are printed here.
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		// Command failures were already reported by the run loop; only
		// the exit code is decided here.
		if ec, ok := err.(exitCoder); ok {
			if code := ec.ExitCode(); code != 0 {
				os.Exit(code)
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Startup panics (bad configuration, registration conflicts) are
// recovered and returned as ordinary errors.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, inv, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Instantiate the concrete HCL loader to pass to the app.
	loader := config.NewLoader()
	gridctlApp := app.NewApp(outW, errW, appConfig, loader)

	return gridctlApp.Run(context.Background(), inv)
}
