// Command rut-events prints every console event, for checking terminal support
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lixenwraith/rut/terminal"
)

var (
	backendFlag = flag.String("backend", "", "Console backend: native or tcell")
	termFlag    = flag.String("term", "", "Override TERM for sequence lookup")
	verboseFlag = flag.Bool("v", false, "Log console internals to stderr, e.g. 2>events.log")
)

func main() {
	flag.Parse()

	log := zap.NewNop()
	if *verboseFlag {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer log.Sync()

	opts := []terminal.Option{terminal.WithLogger(log)}
	if *backendFlag != "" {
		opts = append(opts, terminal.WithBackend(*backendFlag))
	}
	if *termFlag != "" {
		opts = append(opts, terminal.WithTerm(*termFlag))
	}

	console, err := terminal.Open(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}

	runErr := run(console)
	if err := console.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "rut-events: %v\n", runErr)
		os.Exit(1)
	}
}
